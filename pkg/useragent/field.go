package useragent

// Field identifies one Result field an extractor may write.
type Field uint8

const (
	FieldBrowserName Field = iota + 1
	FieldBrowserUnit
	FieldBrowserVersion
	FieldCPUArchitecture
	FieldDeviceType
	FieldDeviceModel
	FieldDeviceVendor
	FieldEngineName
	FieldEngineVersion
	FieldOSName
	FieldOSVersion
)

type fieldInfo struct {
	name     string
	category Category
}

var fields = map[Field]fieldInfo{
	FieldBrowserName:     {"browserName", CategoryBrowser},
	FieldBrowserUnit:     {"browserUnit", CategoryBrowser},
	FieldBrowserVersion:  {"browserVersion", CategoryBrowser},
	FieldCPUArchitecture: {"cpuArchitecture", CategoryCPU},
	FieldDeviceType:      {"deviceType", CategoryDevice},
	FieldDeviceModel:     {"deviceModel", CategoryDevice},
	FieldDeviceVendor:    {"deviceVendor", CategoryDevice},
	FieldEngineName:      {"engineName", CategoryEngine},
	FieldEngineVersion:   {"engineVersion", CategoryEngine},
	FieldOSName:          {"osName", CategoryOS},
	FieldOSVersion:       {"osVersion", CategoryOS},
}

// String returns the field's JSON name.
func (f Field) String() string {
	if info, ok := fields[f]; ok {
		return info.name
	}
	return "unknown"
}

// Category returns the classification axis owning the field,
// or an empty Category for an unknown id.
func (f Field) Category() Category {
	return fields[f].category
}

// Fields returns all field ids in declaration order.
func Fields() []Field {
	out := make([]Field, 0, len(fields))
	for f := FieldBrowserName; f <= FieldOSVersion; f++ {
		out = append(out, f)
	}
	return out
}

// Get returns the value of field f, or an empty string for an unknown id.
func (r Result) Get(f Field) string {
	if p := r.field(f); p != nil {
		return *p
	}
	return ""
}

// field maps a field id to its storage in r. Returns nil for unknown ids.
func (r *Result) field(f Field) *string {
	switch f {
	case FieldBrowserName:
		return &r.BrowserName
	case FieldBrowserUnit:
		return &r.BrowserUnit
	case FieldBrowserVersion:
		return &r.BrowserVersion
	case FieldCPUArchitecture:
		return &r.CPUArchitecture
	case FieldDeviceType:
		return &r.DeviceType
	case FieldDeviceModel:
		return &r.DeviceModel
	case FieldDeviceVendor:
		return &r.DeviceVendor
	case FieldEngineName:
		return &r.EngineName
	case FieldEngineVersion:
		return &r.EngineVersion
	case FieldOSName:
		return &r.OSName
	case FieldOSVersion:
		return &r.OSVersion
	default:
		return nil
	}
}
