package utils

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	WhatsApp WhatsAppConfig
	Email    EmailConfig
	Calendar CalendarConfig
	Venue    VenueConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// WhatsAppConfig holds the Meta Graph API credentials for the operator
// notification. All three values must be present for the dispatcher to run.
type WhatsAppConfig struct {
	Token         string
	PhoneNumberID string
	OperatorPhone string
}

type EmailConfig struct {
	APIKey     string
	From       string
	ReplyTo    string
	AdminEmail string
}

// CalendarConfig carries the Google service-account key (raw JSON) and the
// target calendar. Either value missing disables the calendar dispatcher.
type CalendarConfig struct {
	ServiceAccountKey string
	CalendarID        string
}

type VenueConfig struct {
	Timezone string
	Location string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "nightsky-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("EMAIL_FROM", "Atacama NightSky <onboarding@resend.dev>")
	viper.SetDefault("EMAIL_REPLY_TO", "info@atacamadarksky.cl")
	viper.SetDefault("VENUE_TIMEZONE", "America/Santiago")
	viper.SetDefault("VENUE_LOCATION", "San Pedro de Atacama, Chile")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "https://atacamadarksky.cl")

	// A missing .env file is fine in deployments where everything comes
	// from real environment variables.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		WhatsApp: WhatsAppConfig{
			Token:         viper.GetString("WHATSAPP_TOKEN"),
			PhoneNumberID: viper.GetString("WHATSAPP_PHONE_NUMBER_ID"),
			OperatorPhone: viper.GetString("OPERATOR_PHONE"),
		},
		Email: EmailConfig{
			APIKey:     viper.GetString("RESEND_API_KEY"),
			From:       viper.GetString("EMAIL_FROM"),
			ReplyTo:    viper.GetString("EMAIL_REPLY_TO"),
			AdminEmail: viper.GetString("ADMIN_EMAIL"),
		},
		Calendar: CalendarConfig{
			ServiceAccountKey: viper.GetString("GOOGLE_SERVICE_ACCOUNT_KEY"),
			CalendarID:        viper.GetString("GOOGLE_CALENDAR_ID"),
		},
		Venue: VenueConfig{
			Timezone: viper.GetString("VENUE_TIMEZONE"),
			Location: viper.GetString("VENUE_LOCATION"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
