package auth

import (
	"strings"
	"time"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/config"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email and password are required"})
	}

	db := config.GetDB()
	user, err := database.GetUserByEmail(db, config.GetDriver(), req.Email)
	if err != nil || !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	sessionID := GenerateSessionID().String()
	if err := database.CreateSession(db, config.GetDriver(), sessionID, user.ID, GetSessionExpiry()); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create session"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Expires:  GetSessionExpiry(),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"success": true, "token": token, "user": user})
}

func LogoutAPI(c *fiber.Ctx) error {
	if sessionID := c.Cookies("session_id"); sessionID != "" {
		database.DeleteSession(config.GetDB(), config.GetDriver(), sessionID)
	}
	for _, name := range []string{"jwt_token", "session_id"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func MeAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(fiber.Map{"success": true, "user": user})
}

// AuthMiddleware validates the JWT from the cookie or Authorization header
// and sets the user on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	c.Locals("user", &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	})
	return c.Next()
}
