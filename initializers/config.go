package initializers

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds every knob the service reads from the environment. LoadEnv
// runs first so values in .env are visible to env.Parse.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"huehouse"`

	JWTSecret     string `env:"JWT_SECRET"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SteadfastBaseURL   string `env:"STEADFAST_BASE_URL" envDefault:"https://portal.packzy.com/api/v1"`
	SteadfastAPIKey    string `env:"STEADFAST_API_KEY"`
	SteadfastSecretKey string `env:"STEADFAST_SECRET_KEY"`

	SMTPAddress       string `env:"SMTP_ADDRESS"`
	SMTPHost          string `env:"FROM_EMAIL_SMTP"`
	FromEmail         string `env:"FROM_EMAIL"`
	FromEmailPassword string `env:"FROM_EMAIL_PASSWORD"`
	OwnerEmail        string `env:"OWNER_EMAIL"`

	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"8801700000000"`

	MetaPixelID     string `env:"META_PIXEL_ID"`
	MetaAccessToken string `env:"META_ACCESS_TOKEN"`

	SettlementDelay time.Duration `env:"SETTLEMENT_DELAY" envDefault:"2s"`

	S3Bucket string `env:"S3_BUCKET" envDefault:"huehouse"`
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

var Cfg Config

func LoadConfig() {
	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatal("Failed to parse configuration: ", err)
	}
}
