package models

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryResponded InquiryStatus = "responded"
	InquiryBooked    InquiryStatus = "booked"
	InquiryClosed    InquiryStatus = "closed"
)

// inquiryTransitions lists, per target status, the statuses it may be
// entered from. Re-entering responded is allowed so that every partner
// response stamps the same value.
var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryResponded: {InquiryNew, InquiryResponded},
	InquiryBooked:    {InquiryResponded},
	InquiryClosed:    {InquiryNew, InquiryResponded, InquiryBooked},
}

// AllowedFrom returns the source statuses for a transition into to.
func AllowedFrom(to InquiryStatus) []InquiryStatus {
	return inquiryTransitions[to]
}
