// Package fixtures serves the static demo entities behind the dashboard
// pages. These are presentation data, not part of the durable store: pages
// mutate copies in memory and nothing is persisted.
package fixtures

// GPSCoordinates is a plain lat/lng pair.
type GPSCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SeedBatch is a traceability record from collection through distribution.
type SeedBatch struct {
	ID              string         `json:"id"`
	BatchNumber     string         `json:"batchNumber"`
	Species         string         `json:"species"`
	Quantity        float64        `json:"quantity"`
	Unit            string         `json:"unit"`
	CollectorName   string         `json:"collectorName"`
	CollectionDate  string         `json:"collectionDate"`
	GPSCoordinates  GPSCoordinates `json:"gpsCoordinates"`
	MotherTreeID    string         `json:"motherTreeId"`
	Region          string         `json:"region"`
	Status          string         `json:"status"`
	PhotoURL        string         `json:"photoUrl,omitempty"`
	GerminationRate *float64       `json:"germinationRate,omitempty"`
	NurseryID       string         `json:"nurseryId,omitempty"`
}

// MotherTree is a registered seed source.
type MotherTree struct {
	ID             string         `json:"id"`
	Species        string         `json:"species"`
	GPSCoordinates GPSCoordinates `json:"gpsCoordinates"`
	Age            int            `json:"age"`
	Height         int            `json:"height"`
	EcologicalZone string         `json:"ecologicalZone"`
	HealthStatus   string         `json:"healthStatus"`
	PhotoURL       string         `json:"photoUrl,omitempty"`
	RegisteredDate string         `json:"registeredDate"`
}

// Nursery is a germination site.
type Nursery struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	GPSCoordinates GPSCoordinates `json:"gpsCoordinates"`
	Capacity       int            `json:"capacity"`
	CurrentStock   int            `json:"currentStock"`
	Operator       string         `json:"operator"`
	ActiveBatches  int            `json:"activeBatches"`
}

// RestorationProject is a partner planting programme.
type RestorationProject struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Partner      string   `json:"partner"`
	Location     string   `json:"location"`
	TargetTrees  int      `json:"targetTrees"`
	PlantedTrees int      `json:"plantedTrees"`
	Species      []string `json:"species"`
	StartDate    string   `json:"startDate"`
	Status       string   `json:"status"`
}

// Analytics is the admin overview counter block.
type Analytics struct {
	TotalSeeds          int     `json:"totalSeeds"`
	VerifiedMotherTrees int     `json:"verifiedMotherTrees"`
	GerminationRate     float64 `json:"germinationRate"`
	SurvivalRate        float64 `json:"survivalRate"`
	ActiveNurseries     int     `json:"activeNurseries"`
	ActiveRegions       int     `json:"activeRegions"`
	TotalPlanted        int     `json:"totalPlanted"`
	CarbonSequestered   float64 `json:"carbonSequestered"`
	SpeciesDiversity    int     `json:"speciesDiversity"`
}

func rate(v float64) *float64 { return &v }

// SeedBatches returns a fresh copy of the demo batch list.
func SeedBatches() []SeedBatch {
	return []SeedBatch{
		{
			ID:              "SB-001",
			BatchNumber:     "ENS-WN-001",
			Species:         "Albizia coriaria",
			Quantity:        25,
			Unit:            "kg",
			CollectorName:   "John Okello",
			CollectionDate:  "2025-01-10",
			GPSCoordinates:  GPSCoordinates{Lat: 3.0324, Lng: 30.9108},
			MotherTreeID:    "MT-001",
			Region:          "West Nile - Arua",
			Status:          "in-nursery",
			GerminationRate: rate(78),
			NurseryID:       "NUR-001",
		},
		{
			ID:             "SB-002",
			BatchNumber:    "ENS-WN-002",
			Species:        "Markhamia lutea",
			Quantity:       5000,
			Unit:           "seeds",
			CollectorName:  "Sarah Namuli",
			CollectionDate: "2025-01-15",
			GPSCoordinates: GPSCoordinates{Lat: 3.0456, Lng: 30.9234},
			MotherTreeID:   "MT-002",
			Region:         "West Nile - Arua",
			Status:         "approved",
			NurseryID:      "NUR-001",
		},
		{
			ID:             "SB-003",
			BatchNumber:    "ENS-WN-003",
			Species:        "Khaya anthotheca",
			Quantity:       15,
			Unit:           "kg",
			CollectorName:  "John Okello",
			CollectionDate: "2025-01-20",
			GPSCoordinates: GPSCoordinates{Lat: 3.0201, Lng: 30.8987},
			MotherTreeID:   "MT-003",
			Region:         "West Nile - Arua",
			Status:         "pending",
		},
		{
			ID:              "SB-004",
			BatchNumber:     "ENS-WN-004",
			Species:         "Milicia excelsa",
			Quantity:        8000,
			Unit:            "seeds",
			CollectorName:   "Mary Achan",
			CollectionDate:  "2025-02-01",
			GPSCoordinates:  GPSCoordinates{Lat: 3.0567, Lng: 30.9345},
			MotherTreeID:    "MT-004",
			Region:          "West Nile - Arua",
			Status:          "distributed",
			GerminationRate: rate(85),
			NurseryID:       "NUR-001",
		},
		{
			ID:              "SB-005",
			BatchNumber:     "ENS-WN-005",
			Species:         "Prunus africana",
			Quantity:        12,
			Unit:            "kg",
			CollectorName:   "Peter Drani",
			CollectionDate:  "2025-02-05",
			GPSCoordinates:  GPSCoordinates{Lat: 3.0123, Lng: 30.8876},
			MotherTreeID:    "MT-005",
			Region:          "West Nile - Arua",
			Status:          "in-nursery",
			GerminationRate: rate(72),
			NurseryID:       "NUR-002",
		},
	}
}

// MotherTrees returns a fresh copy of the registered tree list.
func MotherTrees() []MotherTree {
	return []MotherTree{
		{
			ID:             "MT-001",
			Species:        "Albizia coriaria",
			GPSCoordinates: GPSCoordinates{Lat: 3.0324, Lng: 30.9108},
			Age:            25,
			Height:         18,
			EcologicalZone: "Tropical Savanna",
			HealthStatus:   "excellent",
			RegisteredDate: "2024-06-15",
		},
		{
			ID:             "MT-002",
			Species:        "Markhamia lutea",
			GPSCoordinates: GPSCoordinates{Lat: 3.0456, Lng: 30.9234},
			Age:            18,
			Height:         15,
			EcologicalZone: "Woodland",
			HealthStatus:   "good",
			RegisteredDate: "2024-07-20",
		},
		{
			ID:             "MT-003",
			Species:        "Khaya anthotheca",
			GPSCoordinates: GPSCoordinates{Lat: 3.0201, Lng: 30.8987},
			Age:            40,
			Height:         25,
			EcologicalZone: "Forest",
			HealthStatus:   "excellent",
			RegisteredDate: "2024-08-10",
		},
		{
			ID:             "MT-004",
			Species:        "Milicia excelsa",
			GPSCoordinates: GPSCoordinates{Lat: 3.0567, Lng: 30.9345},
			Age:            35,
			Height:         22,
			EcologicalZone: "Forest",
			HealthStatus:   "good",
			RegisteredDate: "2024-09-05",
		},
		{
			ID:             "MT-005",
			Species:        "Prunus africana",
			GPSCoordinates: GPSCoordinates{Lat: 3.0123, Lng: 30.8876},
			Age:            30,
			Height:         20,
			EcologicalZone: "Montane Forest",
			HealthStatus:   "good",
			RegisteredDate: "2024-10-12",
		},
	}
}

// Nurseries returns a fresh copy of the nursery list.
func Nurseries() []Nursery {
	return []Nursery{
		{
			ID:             "NUR-001",
			Name:           "Arua Central Nursery",
			Location:       "Arua District",
			GPSCoordinates: GPSCoordinates{Lat: 3.0195, Lng: 30.9110},
			Capacity:       50000,
			CurrentStock:   23500,
			Operator:       "Sarah Namuli",
			ActiveBatches:  3,
		},
		{
			ID:             "NUR-002",
			Name:           "West Nile Community Hub",
			Location:       "Arua District",
			GPSCoordinates: GPSCoordinates{Lat: 3.0412, Lng: 30.8956},
			Capacity:       30000,
			CurrentStock:   8200,
			Operator:       "James Onen",
			ActiveBatches:  1,
		},
	}
}

// RestorationProjects returns a fresh copy of the partner project list.
func RestorationProjects() []RestorationProject {
	return []RestorationProject{
		{
			ID:           "RP-001",
			Name:         "Mount Wati Reforestation",
			Partner:      "Green Earth Initiative",
			Location:     "West Nile Region",
			TargetTrees:  50000,
			PlantedTrees: 12500,
			Species:      []string{"Albizia coriaria", "Markhamia lutea", "Khaya anthotheca"},
			StartDate:    "2024-11-01",
			Status:       "active",
		},
		{
			ID:           "RP-002",
			Name:         "River Enyau Restoration",
			Partner:      "Uganda Conservation Foundation",
			Location:     "Arua District",
			TargetTrees:  25000,
			PlantedTrees: 8000,
			Species:      []string{"Milicia excelsa", "Prunus africana"},
			StartDate:    "2024-12-15",
			Status:       "active",
		},
		{
			ID:           "RP-003",
			Name:         "Community Forest Recovery",
			Partner:      "Green Earth Initiative",
			Location:     "West Nile Region",
			TargetTrees:  15000,
			PlantedTrees: 15000,
			Species:      []string{"Albizia coriaria", "Markhamia lutea"},
			StartDate:    "2024-08-01",
			Status:       "completed",
		},
	}
}

// PlatformAnalytics returns the admin overview counters.
func PlatformAnalytics() Analytics {
	return Analytics{
		TotalSeeds:          128500,
		VerifiedMotherTrees: 47,
		GerminationRate:     78.5,
		SurvivalRate:        85.2,
		ActiveNurseries:     5,
		ActiveRegions:       3,
		TotalPlanted:        35500,
		CarbonSequestered:   127.5,
		SpeciesDiversity:    18,
	}
}
