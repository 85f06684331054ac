package models

// Slot is a fixed-duration candidate booking interval on a given date.
// Start and End are minutes from midnight; Value is the machine form
// ("15:04") submitted back on booking, Display the human form ("3:04 PM").
type Slot struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Value     string `json:"value"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}
