package policy

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ArePoliciesEqal determines if the two Policy objects can be considered
// equal. String arrays in policies are sets, so their order is not
// significant.
func ArePoliciesEqal(a, b *Policy) (equal bool, diff string) {
	diff = cmp.Diff(a, b,
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(x, y string) bool { return x < y }),
	)
	return diff == "", diff
}

// ArePolicyDocumentsEqual determines if the two policy documents can be considered equal.
func ArePolicyDocumentsEqual(a, b string) bool {
	policyA, err := ParsePolicyString(a)
	if err != nil {
		return a == b
	}
	policyB, err := ParsePolicyString(b)
	if err != nil {
		return false
	}
	eq, _ := ArePoliciesEqal(&policyA, &policyB)
	return eq
}
