package access

var (
	baseCaps    = []Capability{CapCalculate, CapPDFExport}
	premiumCaps = []Capability{CapCloudProjects, CapSteelDetail, CapXLSXExport, CapWhiteLabel, CapAdFree}
)

func CapabilitiesFor(state AccessState) []Capability {
	caps := []Capability{}

	switch state {
	case AccessBanned:
		return caps
	case AccessAnonymous, AccessFree:
		caps = append(caps, baseCaps...)
	case AccessTrial, AccessPro:
		caps = append(caps, baseCaps...)
		caps = append(caps, premiumCaps...)
	case AccessAdmin:
		caps = append(caps, baseCaps...)
		caps = append(caps, premiumCaps...)
		caps = append(caps, CapAdmin)
	}
	return caps
}

func IsPremium(state AccessState) bool {
	return state == AccessTrial || state == AccessPro || state == AccessAdmin
}
