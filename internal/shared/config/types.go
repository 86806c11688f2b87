package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the gorm dialector through Driver ("mysql", "postgres" or "sqlite").
// For sqlite, Database is the file path (":memory:" is accepted).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	switch strings.ToLower(strings.TrimSpace(d.Driver)) {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC&clientFoundRows=true",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	Issuer           string `mapstructure:"issuer"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// TemplatesPath holds optional mail body overrides.
	TemplatesPath string `mapstructure:"templates_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JiraMappingConfig mirrors jiraasset.AttributeMapping so that viper can decode it
// without the domain package depending on mapstructure tags.
type JiraMappingConfig struct {
	SerialNumberAttrID string `mapstructure:"serial_number_attr_id"`
	BrandAttrID        string `mapstructure:"brand_attr_id"`
	ModelAttrID        string `mapstructure:"model_attr_id"`
	TypeAttrID         string `mapstructure:"type_attr_id"`
	StatusAttrID       string `mapstructure:"status_attr_id"`
	InternalIDAttrID   string `mapstructure:"internal_id_attr_id"`
	AssignedUserAttrID string `mapstructure:"assigned_user_attr_id"`
}

type JiraConfig struct {
	BaseURL           string                       `mapstructure:"base_url"`
	SiteURL           string                       `mapstructure:"site_url"`
	WorkspaceID       string                       `mapstructure:"workspace_id"`
	Email             string                       `mapstructure:"email"`
	APIToken          string                       `mapstructure:"api_token"`
	BearerToken       string                       `mapstructure:"bearer_token"`
	DefaultSchema     string                       `mapstructure:"default_schema"`
	DefaultObjectType string                       `mapstructure:"default_object_type"`
	PageSize          int                          `mapstructure:"page_size"`
	TimeoutSeconds    int                          `mapstructure:"timeout_seconds"`
	MaxRetries        int                          `mapstructure:"max_retries"`
	MappingTTLMinutes int                          `mapstructure:"mapping_ttl_minutes"`
	Mappings          map[string]JiraMappingConfig `mapstructure:"mappings"`
}

type PermissionConfig struct {
	ModelPath string `mapstructure:"model_path"`
}

// AllocationConfig lists what every new allocation is stamped with.
type AllocationConfig struct {
	StandardSoftware []string `mapstructure:"standard_software"`
	OverdueAfterDays int      `mapstructure:"overdue_after_days"`
	OverdueCron      string   `mapstructure:"overdue_cron"`
}

// SchedulerConfig drives the background jobs of the server process.
// An empty JiraSyncCron leaves the periodic laptop sync off.
type SchedulerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	JiraSyncCron string `mapstructure:"jira_sync_cron"`
}
