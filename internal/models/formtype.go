package models

// Form type constants. The type determines which optional applicant fields
// are meaningful; the transition engine treats all of them as opaque.
const (
	FormTypeServiceRequest = "service_request"
	FormTypeCostRequest    = "cost_request"
	FormTypeOrgChange      = "org_change"
)

// FormTypes lists all valid form types.
var FormTypes = []string{FormTypeServiceRequest, FormTypeCostRequest, FormTypeOrgChange}

// ValidFormType reports whether t is a known form type.
func ValidFormType(t string) bool {
	for _, v := range FormTypes {
		if t == v {
			return true
		}
	}
	return false
}
