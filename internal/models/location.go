package models

import "time"

// GeoLocation is the subset of the IP-geolocation response the detector uses.
type GeoLocation struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
}

// Detection is the outcome of resolving a visitor's currency from their IP.
type Detection struct {
	Country     string        `json:"country,omitempty"`
	CountryCode string        `json:"country_code,omitempty"`
	Currency    CurrencyCode  `json:"currency"`
	Detected    bool          `json:"detected"`
	Notice      *Notification `json:"notification,omitempty"`
}

// Notification is a transient, dismissible message shown after auto-detection.
type Notification struct {
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	DismissAfter time.Duration `json:"dismiss_after"`
}
