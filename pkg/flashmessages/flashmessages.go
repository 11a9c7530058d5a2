package flashmessages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session keys for one-shot panel messages.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// Messages holds the flash content read for the current request.
type Messages struct {
	Success string
	Error   string
}

func store(c *fiber.Ctx) *session.Store {
	s, _ := c.Locals("session_store").(*session.Store)
	return s
}

// SetFlashMessage stores a one-shot message under the given key.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	s := store(c)
	if s == nil {
		return nil
	}
	sess, err := s.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages reads and clears both flash slots.
func GetFlashMessages(c *fiber.Ctx) Messages {
	var msgs Messages
	s := store(c)
	if s == nil {
		return msgs
	}
	sess, err := s.Get(c)
	if err != nil {
		return msgs
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	_ = sess.Save()
	return msgs
}
