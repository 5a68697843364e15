package domain

// ExportRecord is one flattened line item ready for tabular export
type ExportRecord struct {
	OrderNumber       string `json:"orderNumber"`
	OrderDate         string `json:"orderDate"`
	CustomerName      string `json:"customerName"`
	CustomerEmail     string `json:"customerEmail"`
	CourseName        string `json:"courseName"`
	ChildName         string `json:"childName"`
	ChildAge          string `json:"childAge"`
	ChildDOB          string `json:"childDOB"`
	MedicalConditions string `json:"medicalConditions"`
	ContactPhone      string `json:"contactPhone"`
	ContactEmail      string `json:"contactEmail"`
}

// ExportColumns is the CSV header, in the column order of ExportRecord.Row
var ExportColumns = []string{
	"Order Number",
	"Order Date",
	"Customer Name",
	"Customer Email",
	"Course Name",
	"Child's Name",
	"Child's Age",
	"Child's Date of Birth",
	"Medical Conditions",
	"Contact Telephone",
	"Contact Email",
}

// Row returns the record's cells in ExportColumns order
func (r ExportRecord) Row() []string {
	return []string{
		r.OrderNumber,
		r.OrderDate,
		r.CustomerName,
		r.CustomerEmail,
		r.CourseName,
		r.ChildName,
		r.ChildAge,
		r.ChildDOB,
		r.MedicalConditions,
		r.ContactPhone,
		r.ContactEmail,
	}
}
