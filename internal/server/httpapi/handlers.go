package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"signupd/internal/common"
)

const signupFormHTML = `<html>
  <head>
    <title>Signing up</title>
  </head>
  <body>
    <h1>Create an account</h1>
    <form method="POST" action="/signup">
      <label>nickname:</label><br>
      <input type="text" name="nickname" required /><br><br>

      <label>Email:</label><br>
      <input type="email" name="email" required /><br><br>

      <label>Password:</label><br>
      <input type="password" name="password" required /><br><br>

      <button type="submit">Sign up</button>
    </form>
  </body>
</html>
`

func (s *Server) handleSignupForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(signupFormHTML))
}

func (s *Server) handleSignup(c *gin.Context) {
	nickname := c.PostForm("nickname")
	email := c.PostForm("email")
	password := c.PostForm("password")

	// Confirmation links point back at whatever host and port this request
	// arrived on.
	baseURL := "http://" + c.Request.Host

	user, err := s.signup.Register(c.Request.Context(), nickname, email, password, baseURL)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			c.String(http.StatusBadRequest, "❌ Error: nickname already taken")
		case errors.Is(err, common.ErrorValidation):
			c.String(http.StatusBadRequest, "❌ Error: nickname, email and password are required")
		default:
			s.logger.Error(c.Request.Context(), "signup failed", "error", err)
			c.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.String(http.StatusOK,
		"🎉 Account created for %s (%s) — a confirmation email has been sent.",
		user.Nickname, email)
}

func (s *Server) handleConfirm(c *gin.Context) {
	token := c.Query("token")

	if err := s.signup.Confirm(c.Request.Context(), token); err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			c.String(http.StatusBadRequest, "Invalid confirmation token")
			return
		}
		s.logger.Error(c.Request.Context(), "confirmation failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.String(http.StatusOK, "✅ Your account has been confirmed!")
}
