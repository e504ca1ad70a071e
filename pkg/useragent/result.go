package useragent

// Result holds the attributes extracted from a user agent string.
// Every field defaults to empty, which means "not classified".
type Result struct {
	BrowserName    string `json:"browserName"`
	BrowserUnit    string `json:"browserUnit"` // reserved, never populated
	BrowserVersion string `json:"browserVersion"`

	CPUArchitecture string `json:"cpuArchitecture"`

	DeviceType   string `json:"deviceType"`
	DeviceModel  string `json:"deviceModel"`
	DeviceVendor string `json:"deviceVendor"`

	EngineName    string `json:"engineName"`
	EngineVersion string `json:"engineVersion"`

	OSName    string `json:"osName"`
	OSVersion string `json:"osVersion"`
}

// IsMobile returns true if the device was classified as a phone
func (r Result) IsMobile() bool { return r.DeviceType == DeviceTypeMobile }

// IsTablet returns true if the device was classified as a tablet
func (r Result) IsTablet() bool { return r.DeviceType == DeviceTypeTablet }

// IsConsole returns true if the device was classified as a gaming console
func (r Result) IsConsole() bool { return r.DeviceType == DeviceTypeConsole }

// IsSmartTV returns true if the device was classified as a smart TV
func (r Result) IsSmartTV() bool { return r.DeviceType == DeviceTypeSmartTV }

// IsWearable returns true if the device was classified as a wearable
func (r Result) IsWearable() bool { return r.DeviceType == DeviceTypeWearable }

// IsUnknownDevice returns true if no device rule assigned a type.
// Desktop browsers usually end up here.
func (r Result) IsUnknownDevice() bool { return r.DeviceType == "" }

// IsEmpty reports whether no category produced any value.
func (r Result) IsEmpty() bool { return r == Result{} }
