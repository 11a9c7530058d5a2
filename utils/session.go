package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var ErrNoSession = errors.New("session not available")

// SessionStart returns the current request's session from the store placed
// in locals by the router.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSession
	}
	return store.Get(c)
}

// GetUserIDFromSession reads the logged-in user id.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("no user in session")
	}
	return id, nil
}

// GetIsAdminFromSession reads the admin flag.
func GetIsAdminFromSession(sess *session.Session) (bool, error) {
	isAdmin, ok := sess.Get("is_admin").(bool)
	if !ok {
		return false, errors.New("no admin flag in session")
	}
	return isAdmin, nil
}

// Login stores the user identity in the session.
func Login(sess *session.Session, userID uint, name string, isAdmin bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", name)
	sess.Set("is_admin", isAdmin)
	return sess.Save()
}

// Logout destroys the session.
func Logout(sess *session.Session) error {
	return sess.Destroy()
}
