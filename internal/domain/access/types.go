package access

type AccessState string

const (
	AccessAnonymous AccessState = "anonymous"
	AccessFree      AccessState = "free"
	AccessTrial     AccessState = "trial"
	AccessPro       AccessState = "pro"
	AccessAdmin     AccessState = "admin"
	AccessBanned    AccessState = "banned"
)

type Capability string

const (
	CapCalculate     Capability = "calculate"
	CapPDFExport     Capability = "pdf_export"
	CapCloudProjects Capability = "cloud_projects"
	CapSteelDetail   Capability = "steel_detail"
	CapXLSXExport    Capability = "xlsx_export"
	CapWhiteLabel    Capability = "white_label"
	CapAdFree        Capability = "ad_free"
	CapAdmin         Capability = "admin"
)
