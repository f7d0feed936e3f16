package contact

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"construlab/config"
	"construlab/internal/api/auth"
	"construlab/internal/infra/mailer"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
)

const maxMessageLen = 5000

var strict = bluemonday.StrictPolicy()

// plainText strips markup and returns unescaped text, suitable for a header.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// POST /contact forwards the form to CONTACT_TO with the sender as Reply-To.
// The route sits outside the sanitising group. Name and subject are plain
// text; everything is HTML-escaped once when the body is built.
func Send(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	name := plainText(body.Name)
	email := strings.TrimSpace(body.Email)
	subject := plainText(body.Subject)
	message := strings.TrimSpace(body.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if !auth.IsEmailValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if len([]rune(message)) > maxMessageLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is too long"})
		return
	}
	if config.CONTACT_TO == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not configured"})
		return
	}

	msg := mailer.Message{
		To:      config.CONTACT_TO,
		ReplyTo: email,
		Subject: "[Contact] " + subject,
		Body: fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(name), html.EscapeString(email),
			strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")),
		HTML: true,
	}
	if err := mailer.Default.Send(c.Request.Context(), msg); err != nil {
		log.WithError(err).Error("send contact message")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
