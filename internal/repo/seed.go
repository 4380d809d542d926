// internal/repo/seed.go
package repo

import (
	"time"

	"gmao/internal/auth"
	"gmao/internal/models"
)

// Seed data applied when a collection is missing from the backend. Ids are
// fixed so the demo records reference each other; the allocator is primed
// past them on load.

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedUsers() []models.User {
	hash := func(pw string) string {
		h, err := auth.HashPassword(pw, auth.DefaultParams())
		if err != nil {
			panic("seed password hash: " + err.Error())
		}
		return h
	}
	return []models.User{
		{ID: 1, Username: "admin", PasswordHash: hash("admin123"), Role: models.RoleAdmin,
			FullName: "Administrateur", Email: "admin@gmao.local", Active: true},
		{ID: 2, Username: "mmartin", PasswordHash: hash("manager123"), Role: models.RoleManager,
			FullName: "Marie Martin", Email: "m.martin@gmao.local", Active: true},
		{ID: 3, Username: "jdupont", PasswordHash: hash("tech123"), Role: models.RoleTechnician,
			FullName: "Jean Dupont", Email: "j.dupont@gmao.local", Active: true},
	}
}

func seedEquipment() []models.Equipment {
	return []models.Equipment{
		{ID: 1, Code: "EQ001", Name: "Presse hydraulique", Type: "Presse", Location: "Atelier A",
			InstallDate: date(2018, time.March, 12), State: models.EquipmentOperational,
			NextMaintenance: date(2025, time.January, 15)},
		{ID: 2, Code: "EQ002", Name: "Tour CNC", Type: "Machine-outil", Location: "Atelier B",
			InstallDate: date(2020, time.June, 2), State: models.EquipmentMaintenance,
			NextMaintenance: date(2024, time.December, 5)},
		{ID: 3, Code: "EQ003", Name: "Four industriel", Type: "Four", Location: "Zone chauffage",
			InstallDate: date(2015, time.September, 30), State: models.EquipmentOperational,
			NextMaintenance: date(2025, time.February, 20)},
		{ID: 4, Code: "EQ004", Name: "Robot KUKA", Type: "Robot", Location: "Ligne 2",
			InstallDate: date(2021, time.January, 18), State: models.EquipmentOperational,
			NextMaintenance: date(2025, time.March, 10)},
		{ID: 5, Code: "EQ005", Name: "Compresseur", Type: "Compresseur", Location: "Salle tech",
			InstallDate: date(2017, time.May, 22), State: models.EquipmentOutOfService},
	}
}

func seedWorkOrders() []models.WorkOrder {
	return []models.WorkOrder{
		{ID: 1, Code: "INT0001", EquipmentID: 1, Type: "Panne", Description: "Panne moteur",
			TechnicianID: 3, PlannedDate: date(2024, time.November, 25), EstimatedHours: 8,
			Priority: models.PriorityHigh, Status: models.StatusInProgress,
			EstimatedCost: 850, CreatedBy: 1},
		{ID: 2, Code: "INT0002", EquipmentID: 2, Type: "Révision", Description: "Révision annuelle",
			TechnicianID: 2, PlannedDate: date(2024, time.November, 26), EstimatedHours: 4,
			ActualHours: 4, Priority: models.PriorityLow, Status: models.StatusDone,
			EstimatedCost: 300, ActualCost: 300, Resolution: "Révision effectuée", CreatedBy: 1},
		{ID: 3, Code: "INT0003", EquipmentID: 3, Type: "Maintenance", Description: "Résistances usées",
			TechnicianID: 3, PlannedDate: date(2024, time.November, 27), EstimatedHours: 12,
			Priority: models.PriorityMedium, Status: models.StatusToPlan,
			EstimatedCost: 1200, CreatedBy: 1},
		{ID: 4, Code: "INT0004", EquipmentID: 4, Type: "Contrôle", Description: "Calibration bras",
			TechnicianID: 2, PlannedDate: date(2024, time.November, 28), EstimatedHours: 6,
			Priority: models.PriorityHigh, Status: models.StatusInProgress,
			EstimatedCost: 650, CreatedBy: 1},
		{ID: 5, Code: "INT0005", EquipmentID: 5, Type: "Panne", Description: "Fuite huile",
			TechnicianID: 3, PlannedDate: date(2024, time.November, 29), EstimatedHours: 24,
			Priority: models.PriorityUrgent, Status: models.StatusAwaitingParts,
			EstimatedCost: 1800, Cause: "Joint défectueux", CreatedBy: 1},
	}
}

func seedStock() []models.StockItem {
	return []models.StockItem{
		{ID: 1, Reference: "ROUL-6204", Designation: "Roulement 6204", Category: "Mécanique",
			Quantity: 8, MinThreshold: 10, Unit: "pcs", Location: "Magasin A1",
			Supplier: "SKF France", UnitPrice: 12.5},
		{ID: 2, Reference: "COUR-A33", Designation: "Courroie A33", Category: "Transmission",
			Quantity: 12, MinThreshold: 10, Unit: "pcs", Location: "Magasin A2",
			Supplier: "Gates", UnitPrice: 18},
		{ID: 3, Reference: "HUIL-46", Designation: "Huile hydraulique ISO 46", Category: "Fluides",
			Quantity: 20, MinThreshold: 10, Unit: "L", Location: "Magasin B1",
			Supplier: "Total", UnitPrice: 6.8},
	}
}

func seedTools() []models.Tool {
	return []models.Tool{
		{ID: 1, Reference: "OUT001", Name: "Perceuse à colonne", Type: "Perçage",
			Brand: "Bosch", Condition: models.ConditionGood, Location: "Atelier A",
			AcquisitionDate: date(2019, time.April, 3), AcquisitionPrice: 1200, CurrentValue: 700,
			Availability: models.ToolAvailable},
		{ID: 2, Reference: "OUT002", Name: "Multimètre", Type: "Mesure",
			Brand: "Fluke", Model: "87V", SerialNumber: "FLK-87524",
			Condition: models.ConditionExcellent, Location: "Salle tech",
			AcquisitionDate: date(2022, time.October, 11), AcquisitionPrice: 450, CurrentValue: 380,
			Availability: models.ToolAvailable},
		{ID: 3, Reference: "OUT003", Name: "Clé dynamométrique", Type: "Serrage",
			Brand: "Facom", Condition: models.ConditionFair, Location: "Atelier B",
			AcquisitionDate: date(2016, time.July, 19), AcquisitionPrice: 320, CurrentValue: 90,
			Availability: models.ToolInRepair},
	}
}

func seedThirdParties() []models.ThirdParty {
	return []models.ThirdParty{
		{ID: 1, Name: "SKF France", Kind: models.KindSupplier, Specialty: "Roulements",
			Contact:        models.Contact{Name: "P. Leroux", Email: "contact@skf.example", Phone: "+33 1 44 55 66 77"},
			Address:        "12 rue des Forges, Lyon",
			ContractActive: true, ContractStart: date(2023, time.January, 1), ContractEnd: date(2025, time.December, 31),
			LeadTimeDays: 5, ReliabilityScore: 4.5},
		{ID: 2, Name: "Électro Services", Kind: models.KindSubcontractor, Specialty: "Électricité industrielle",
			Contact:        models.Contact{Name: "S. Garnier", Email: "contact@electro.example", Phone: "+33 4 72 18 19 20"},
			Address:        "8 avenue de l'Industrie, Villeurbanne",
			ContractActive: true, ContractStart: date(2024, time.March, 1),
			HourlyRate:     65, InterventionZone: "Rhône-Alpes",
			Certifications: []string{"Habilitation B2V", "QUALIFELEC"},
			LiabilityInsured: true, LiabilityAmount: 2000000},
	}
}

func seedPersonnel() []models.Personnel {
	return []models.Personnel{
		{ID: 1, FullName: "Jean Dupont", BadgeNumber: "B001", JobTitle: "Technicien de maintenance",
			Department: "Maintenance", HourlyCost: 38, Status: models.PersonnelActive,
			Skills:   []string{"mécanique", "hydraulique"},
			HireDate: date(2016, time.September, 1), ContractType: "CDI",
			Contact:  models.Contact{Email: "j.dupont@gmao.local", Phone: "+33 6 12 34 56 78"}},
		{ID: 2, FullName: "Marie Martin", BadgeNumber: "B002", JobTitle: "Chef d'équipe",
			Department: "Maintenance", HourlyCost: 45, Status: models.PersonnelActive,
			Skills:         []string{"électricité", "automatisme"},
			Certifications: []string{"Habilitation BR"},
			HireDate:       date(2012, time.February, 15), ContractType: "CDI",
			Contact:        models.Contact{Email: "m.martin@gmao.local"}},
		{ID: 3, FullName: "Paul Bernard", BadgeNumber: "B003", JobTitle: "Technicien électricien",
			Department: "Maintenance", HourlyCost: 36, Status: models.PersonnelTraining,
			Skills:   []string{"électricité"},
			HireDate: date(2021, time.June, 7), ContractType: "CDD",
			Contact:  models.Contact{Email: "p.bernard@gmao.local"}},
	}
}
