package constants

// Redis keys
const (
	// KeyDriverGeo is the geo set holding last known locations of online drivers
	KeyDriverGeo = "drivers:geo"
)
