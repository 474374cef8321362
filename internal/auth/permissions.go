package auth

import "github.com/gofiber/fiber/v2"

// Permission names what an endpoint needs rather than which roles may call
// it, so role changes stay in this table instead of being scattered across
// handlers.
type Permission string

const (
	PermCartWrite      Permission = "cart:write"
	PermWishlistWrite  Permission = "wishlist:write"
	PermOrdersPlace    Permission = "orders:place"
	PermOrdersCancel   Permission = "orders:cancel"
	PermOrdersReturn   Permission = "orders:return"
	PermOrdersStatus   Permission = "orders:status"
	PermProductsManage Permission = "products:manage"
	PermProductsPrice  Permission = "products:price"
	PermInvoicesReport Permission = "invoices:report"
	PermReviewsWrite   Permission = "reviews:write"
	PermReviewsModerate Permission = "reviews:moderate"
	PermProfileWrite   Permission = "profile:write"
)

var rolePermissions = map[string]map[Permission]bool{
	RoleCustomer: {
		PermCartWrite:     true,
		PermWishlistWrite: true,
		PermOrdersPlace:   true,
		PermOrdersCancel:  true,
		PermOrdersReturn:  true,
		PermReviewsWrite:  true,
		PermProfileWrite:  true,
	},
	RoleProductManager: {
		PermCartWrite:       true,
		PermWishlistWrite:   true,
		PermOrdersPlace:     true,
		PermOrdersCancel:    true,
		PermOrdersReturn:    true,
		PermOrdersStatus:    true,
		PermProductsManage:  true,
		PermReviewsWrite:    true,
		PermReviewsModerate: true,
		PermProfileWrite:    true,
	},
	RoleSalesManager: {
		PermOrdersStatus:   true,
		PermProductsPrice:  true,
		PermInvoicesReport: true,
		PermProfileWrite:   true,
	},
}

// HasPermission reports whether the given role grants the permission.
func HasPermission(role string, perm Permission) bool {
	return rolePermissions[role][perm]
}

// RequirePermission gates a route on the role claim of the caller's token.
func RequirePermission(perm Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := RoleFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if !HasPermission(role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden", "code": "forbidden"})
		}
		return c.Next()
	}
}
