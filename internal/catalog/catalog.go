// Package catalog holds the fixed seed records loaded at process start:
// the room inventory, the guest directory and the restaurant menu.
// Accessors return fresh copies so callers can never mutate the seed.
package catalog

import (
	guestModel "orchid/internal/domains/guest/model"
	inventoryModel "orchid/internal/domains/inventory/model"
	restaurantModel "orchid/internal/domains/restaurant/model"
)

var rooms = []inventoryModel.Room{
	{ID: 1, RoomNo: "101", Type: inventoryModel.RoomTypeSingle, Price: 80, Status: inventoryModel.RoomStatusAvailable},
	{ID: 2, RoomNo: "102", Type: inventoryModel.RoomTypeSingle, Price: 80, Status: inventoryModel.RoomStatusOccupied},
	{ID: 3, RoomNo: "201", Type: inventoryModel.RoomTypeDouble, Price: 120, Status: inventoryModel.RoomStatusAvailable},
	{ID: 4, RoomNo: "202", Type: inventoryModel.RoomTypeDouble, Price: 120, Status: inventoryModel.RoomStatusAvailable},
	{ID: 5, RoomNo: "301", Type: inventoryModel.RoomTypeSuite, Price: 200, Status: inventoryModel.RoomStatusAvailable},
	{ID: 6, RoomNo: "302", Type: inventoryModel.RoomTypeSuite, Price: 200, Status: inventoryModel.RoomStatusMaintenance},
	{ID: 7, RoomNo: "401", Type: inventoryModel.RoomTypeDeluxe, Price: 300, Status: inventoryModel.RoomStatusAvailable},
	{ID: 8, RoomNo: "402", Type: inventoryModel.RoomTypeDeluxe, Price: 300, Status: inventoryModel.RoomStatusOccupied},
}

var guests = []guestModel.Guest{
	{ID: 1, Name: "John Doe", Phone: "+1-555-0101", Email: "john@example.com", Address: "123 Main St, New York"},
	{ID: 2, Name: "Jane Smith", Phone: "+1-555-0102", Email: "jane@example.com", Address: "456 Oak Ave, Boston"},
	{ID: 3, Name: "Mike Johnson", Phone: "+1-555-0103", Email: "mike@example.com", Address: "789 Pine Rd, Chicago"},
}

var menuItems = []restaurantModel.MenuItem{
	{ID: 1, Name: "Caesar Salad", Price: 12, Category: restaurantModel.MenuCategoryStarter},
	{ID: 2, Name: "Soup of the Day", Price: 8, Category: restaurantModel.MenuCategoryStarter},
	{ID: 3, Name: "Bruschetta", Price: 10, Category: restaurantModel.MenuCategoryStarter},
	{ID: 4, Name: "Grilled Salmon", Price: 28, Category: restaurantModel.MenuCategoryMain},
	{ID: 5, Name: "Beef Steak", Price: 35, Category: restaurantModel.MenuCategoryMain},
	{ID: 6, Name: "Vegetarian Pasta", Price: 18, Category: restaurantModel.MenuCategoryMain},
	{ID: 7, Name: "Chicken Alfredo", Price: 22, Category: restaurantModel.MenuCategoryMain},
	{ID: 8, Name: "Chocolate Cake", Price: 9, Category: restaurantModel.MenuCategoryDessert},
	{ID: 9, Name: "Ice Cream Sundae", Price: 7, Category: restaurantModel.MenuCategoryDessert},
	{ID: 10, Name: "Tiramisu", Price: 10, Category: restaurantModel.MenuCategoryDessert},
	{ID: 11, Name: "Fresh Orange Juice", Price: 5, Category: restaurantModel.MenuCategoryBeverage},
	{ID: 12, Name: "Coffee", Price: 4, Category: restaurantModel.MenuCategoryBeverage},
	{ID: 13, Name: "Wine", Price: 15, Category: restaurantModel.MenuCategoryBeverage},
}

func Rooms() []inventoryModel.Room {
	out := make([]inventoryModel.Room, len(rooms))
	copy(out, rooms)

	return out
}

func Guests() []guestModel.Guest {
	out := make([]guestModel.Guest, len(guests))
	copy(out, guests)

	return out
}

func MenuItems() []restaurantModel.MenuItem {
	out := make([]restaurantModel.MenuItem, len(menuItems))
	copy(out, menuItems)

	return out
}
