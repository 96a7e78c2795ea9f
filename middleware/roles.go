package middleware

import (
	"madrasa/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a guard that admits callers whose role is in the
// allowed set. It runs after JWTMiddleware and before the handler, so a
// failed check produces no side effects. ADMIN is implicitly allowed
// everywhere.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles)+1)
	for _, r := range roles {
		allowed[r] = true
	}
	allowed[models.RoleAdmin] = true

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		if !allowed[role] {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}
		return c.Next()
	}
}

// TeacherOnly admits TEACHER and ADMIN callers.
func TeacherOnly() fiber.Handler {
	return RequireRoles(models.RoleTeacher)
}

// StudentOnly admits STUDENT and ADMIN callers.
func StudentOnly() fiber.Handler {
	return RequireRoles(models.RoleStudent)
}

// AdminOnly admits ADMIN callers only.
func AdminOnly() fiber.Handler {
	return RequireRoles()
}
