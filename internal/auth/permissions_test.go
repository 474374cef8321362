package auth

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role string
		perm Permission
		want bool
	}{
		{RoleCustomer, PermCartWrite, true},
		{RoleCustomer, PermOrdersStatus, false},
		{RoleCustomer, PermInvoicesReport, false},
		{RoleSalesManager, PermProductsPrice, true},
		{RoleSalesManager, PermInvoicesReport, true},
		{RoleSalesManager, PermProductsManage, false},
		{RoleSalesManager, PermCartWrite, false},
		{RoleProductManager, PermProductsManage, true},
		{RoleProductManager, PermReviewsModerate, true},
		{RoleProductManager, PermProductsPrice, false},
		{"Admin", PermCartWrite, false},
		{"", PermProfileWrite, false},
	}

	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.perm); got != tc.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}
