package useragent

import "time"

// Device types written to Result.DeviceType. An empty value means the device
// could not be classified; there is no explicit desktop token.
const (
	// DeviceTypeConsole identifies gaming consoles (PlayStation, Xbox, Nintendo, Ouya, Shield)
	DeviceTypeConsole = "console"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeSmartTV identifies smart TVs
	DeviceTypeSmartTV = "smarttv"

	// DeviceTypeTablet identifies tablet devices (iPad, Kindle Fire, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeWearable identifies watches and glasses
	DeviceTypeWearable = "wearable"
)

// Category is one classification axis of the pattern table.
type Category string

// Classification axes, listed in evaluation order.
const (
	CategoryBrowser Category = "browser"
	CategoryCPU     Category = "cpu"
	CategoryDevice  Category = "device"
	CategoryEngine  Category = "engine"
	CategoryOS      Category = "os"
)

// categoryOrder is the fixed order in which Parse evaluates categories.
var categoryOrder = [...]Category{
	CategoryBrowser,
	CategoryCPU,
	CategoryDevice,
	CategoryEngine,
	CategoryOS,
}

// Categories returns the classification axes in evaluation order.
func Categories() []Category {
	return categoryOrder[:]
}

func (c Category) index() int {
	for i, cat := range categoryOrder {
		if cat == c {
			return i
		}
	}
	return -1
}

const (
	// DefaultMaxLength is the number of input bytes considered by Parse.
	// Real user agents are well below it.
	DefaultMaxLength = 1024

	// DefaultMatchTimeout bounds a single pattern search.
	DefaultMatchTimeout = 100 * time.Millisecond
)
