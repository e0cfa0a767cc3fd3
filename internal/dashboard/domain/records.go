package domain

import "time"

// CheckIn is one guest stay.
type CheckIn struct {
	ID           string    `json:"id"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	People       int       `json:"people"`
	Rooms        int       `json:"rooms"`
	Nights       int       `json:"nights"`
	Holidays     int       `json:"holidays"` // weekend/holiday nights within the stay
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Income is a single revenue entry.
type Income struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Item      string    `json:"item"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Expense is a single cost entry.
type Expense struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Notes      string    `json:"notes"`
	ExtraNotes string    `json:"extraNotes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Laundry is one linen delivery/retrieval cycle.
type Laundry struct {
	ID            string    `json:"id"`
	DeliveryDate  time.Time `json:"deliveryDate"`
	RetrievalDate time.Time `json:"retrievalDate"`
	DuvetCovers   int       `json:"duvetCovers"`
	BedSheets     int       `json:"bedSheets"`
	Pillowcases   int       `json:"pillowcases"`
	LargeTowels   int       `json:"largeTowels"`
	SmallTowels   int       `json:"smallTowels"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
