package model

// Default records written on first boot when a collection has never been
// initialized. User passwords here are plaintext defaults; seeding hashes
// them before anything is stored.
var DefaultUsers = []User{
	{ID: 1, Name: "Admin User", Username: "admin", Password: "admin123", Role: RoleAdmin},
	{ID: 2, Name: "Kasir User", Username: "kasir", Password: "kasir123", Role: RoleKasir},
	{ID: 3, Name: "Owner User", Username: "owner", Password: "owner123", Role: RoleOwner},
}

var DefaultCustomers = []Customer{
	{ID: 1, Name: "John Doe", Address: "Jl. Merdeka No. 123", Phone: "08123456789"},
	{ID: 2, Name: "Jane Smith", Address: "Jl. Pahlawan No. 456", Phone: "08987654321"},
}

var DefaultOutlets = []Outlet{
	{ID: 1, Name: "Laundry Central", Address: "Jl. Sudirman No. 789", Phone: "02112345678"},
	{ID: 2, Name: "Laundry Express", Address: "Jl. Gatot Subroto No. 101", Phone: "02187654321"},
}

var DefaultProducts = []Product{
	{ID: 1, Name: "Cuci Kering", Price: 7000, OutletID: 1, Type: TypeKiloan},
	{ID: 2, Name: "Cuci Setrika", Price: 10000, OutletID: 1, Type: TypeKiloan},
	{ID: 3, Name: "Setrika Saja", Price: 5000, OutletID: 1, Type: TypeSatuan},
	{ID: 4, Name: "Cuci Express", Price: 15000, OutletID: 2, Type: TypeKiloan},
}
