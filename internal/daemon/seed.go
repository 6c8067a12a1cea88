package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/db/models"
)

// defaultSections are created empty-ish on first start so the console always
// shows the full editable surface of the public site.
var defaultSections = map[string]string{
	"hero":           `{"title":"Welcome","subtitle":""}`,
	"about":          `{"heading":"About us","body":""}`,
	"why-choose":     `{"heading":"Why choose us","items":[]}`,
	"leadership":     `{"heading":"Leadership","items":[]}`,
	"projects":       `{"heading":"Projects","items":[]}`,
	"testimonials":   `{"heading":"Testimonials","items":[]}`,
	"special-offers": `{"heading":"Special offers","items":[]}`,
	"services":       `{"heading":"Services","items":[]}`,
	"news":           `{"heading":"News","items":[]}`,
	"csr":            `{"heading":"Social responsibility","items":[]}`,
	"events":         `{"heading":"Events","items":[]}`,
	"careers":        `{"heading":"Careers","items":[]}`,
	"contact":        `{"heading":"Contact","address":"","phone":"","email":""}`,
	"group-company":  `{"heading":"Group companies","items":[]}`,
	"partnership":    `{"heading":"Partnerships","items":[]}`,
	"footer":         `{"text":""}`,
}

func seed(cfg *config.Config, db *gorm.DB) {
	var count int64

	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		// first start: create the initial console admin, the password must
		// be changed right after
		err := db.Create(
			&models.User{
				Active:   true,
				FullName: "Administrator",
				Email:    "admin@" + cfg.Webserver.Domain,
				Password: models.HashPassword("changeme"),
				IsAdmin:  true,
			},
		).Error
		if err != nil {
			log.Error().Err(err).Msg("failed to seed admin user")
		} else {
			log.Info().Str("email", "admin@"+cfg.Webserver.Domain).
				Msg("created initial admin account with default password")
		}
	}

	for name, value := range defaultSections {
		if _, err := content.Get(db, name); err == nil {
			continue
		}

		if _, err := content.Create(db, name, []byte(value)); err != nil {
			log.Error().Err(err).Str("section", name).Msg("failed to seed content section")
		}
	}
}
