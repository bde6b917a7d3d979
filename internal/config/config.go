// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/foodgram/internal/password"
)

const (
	defaultConfigFilePath = "/data/foodgram.yaml"
	defaultDotEnvPath     = ".env"
	appSecretBytes        = 32
	appSecretFilePerms    = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

const (
	FileStoreDriverLocal = "local"
	FileStoreDriverS3    = "s3"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// The validator succeeds only if all fields listed in the tag parameter are
// zero, or all of them are set. It is attached to a placeholder field and
// inspects the parent struct. Field names are given as a comma or space
// separated list (e.g. `validate:"allOrNothing=A,B,C"`).
//
// A nil pointer or interface counts as zero; a non-nil one is dereferenced
// before the check. A non-struct parent, an unknown field name, or an empty
// list fails validation to surface misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		switch e.Tag() {
		case "allOrNothing":
			// "Config.FileStore.S3.Validate" -> "S3"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "S3":
				fields = "Endpoint, Bucket, AccessKeyID, and SecretAccessKey"
			case "Admin":
				fields = "Username, FirstName, LastName, Email, and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		case "required_if":
			return fmt.Errorf("%s is required by the selected driver", e.Namespace())
		}
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Driver string `yaml:"driver" validate:"oneof=postgres sqlite"`

	// postgres
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database" validate:"required_if=Driver postgres"`
	User     string `yaml:"user" validate:"required_if=Driver postgres"`
	Password string `yaml:"password"`

	// sqlite
	Path string `yaml:"path" validate:"required_if=Driver sqlite"`
}

// DSN returns the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

type S3 struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	PublicURL       string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint Bucket AccessKeyID SecretAccessKey"`
}

type FileStore struct {
	Driver    string `yaml:"driver" validate:"oneof=local s3"`
	Volume    string `yaml:"volume" validate:"required_if=Driver local"`
	URLPrefix string `yaml:"url_prefix"`
	S3        S3     `yaml:"s3"`
}

type Admin struct {
	Username  string        `yaml:"username"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Username FirstName LastName Email Password"`
}

func (a Admin) Configured() bool {
	return a.Email != ""
}

type Server struct {
	Address        string   `yaml:"address" validate:"required"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	Admin      Admin     `yaml:"admin"`
	FileStore  FileStore `yaml:"filestore"`
	Database   Database  `yaml:"database"`
	Server     Server    `yaml:"server"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = strings.TrimSpace(string(data))
	}
	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func validate(conf Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(v)
	if err := v.Struct(conf); err != nil {
		return formatValidationError(err)
	}
	if conf.FileStore.Driver == FileStoreDriverS3 && conf.FileStore.S3.Endpoint == "" {
		return errors.New("S3 configuration is required by the s3 filestore driver")
	}
	return nil
}

func loadConfigFromEnv() (Config, error) {
	environment := loadWithDefault("ENV", EnvDev)
	hostOrigin := loadWithDefault("HOST_ORIGIN", "http://localhost:8080")

	// AppSecret
	appSecretValue := AppSecretValue(loadWithDefault("APP_SECRET", ""))
	appSecretPath := loadWithDefault("APP_SECRET_PATH", "/data/secret")
	appSecretVersion := loadWithDefault("APP_SECRET_VERSION", "1")

	// Database
	databaseDriver := loadWithDefault("DATABASE_DRIVER", DatabaseDriverSQLite)
	databasePort := loadWithDefault("DATABASE_PORT", "5432")
	databaseHost := loadWithDefault("DATABASE_HOST", "localhost")
	databaseDatabase := loadWithDefault("DATABASE", "")
	databaseUser := loadWithDefault("DATABASE_USER", "")
	databasePassword := loadWithDefault("DATABASE_PASSWORD", "")
	databasePath := loadWithDefault("DATABASE_PATH", "/data/foodgram.db")

	// FileStore
	fileStoreDriver := loadWithDefault("FILESTORE_DRIVER", FileStoreDriverLocal)
	fileStoreVolume := loadWithDefault("FILESTORE_VOLUME", "/data/media")
	fileStoreURLPrefix := loadWithDefault("FILESTORE_URL_PREFIX", "/media")
	s3UseSSL := loadWithDefault("S3_USE_SSL", "true")

	// Server
	serverAddress := loadWithDefault("SERVER_ADDRESS", ":8080")
	allowedOrigins := loadWithDefault("ALLOWED_ORIGINS", "")

	conf := Config{
		HostOrigin: hostOrigin,
		Env:        environment,
		Server: Server{
			Address:        serverAddress,
			AllowedOrigins: splitOrigins(allowedOrigins),
		},
	}

	// Load App Secret
	conf.AppSecret = AppSecret{
		Path:    appSecretPath,
		Version: appSecretVersion,
	}
	if appSecretValue != "" {
		conf.AppSecret.Value = &appSecretValue
	}

	// Load Database
	conf.Database = Database{
		Driver:   databaseDriver,
		Host:     databaseHost,
		Database: databaseDatabase,
		User:     databaseUser,
		Password: databasePassword,
		Path:     databasePath,
	}
	if port, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(port)
	}

	// Load FileStore
	conf.FileStore = FileStore{
		Driver:    fileStoreDriver,
		Volume:    fileStoreVolume,
		URLPrefix: fileStoreURLPrefix,
		S3: S3{
			Endpoint:        loadWithDefault("S3_ENDPOINT", ""),
			Region:          loadWithDefault("S3_REGION", ""),
			Bucket:          loadWithDefault("S3_BUCKET", ""),
			AccessKeyID:     loadWithDefault("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: loadWithDefault("S3_SECRET_ACCESS_KEY", ""),
			PublicURL:       loadWithDefault("S3_PUBLIC_URL", ""),
		},
	}
	if b, err := strconv.ParseBool(s3UseSSL); err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", s3UseSSL, err)
	} else {
		conf.FileStore.S3.UseSSL = b
	}

	// Load Admin
	conf.Admin = Admin{
		Username:  loadWithDefault("ADMIN_USERNAME", ""),
		FirstName: loadWithDefault("ADMIN_FIRST_NAME", ""),
		LastName:  loadWithDefault("ADMIN_LAST_NAME", ""),
		Email:     loadWithDefault("ADMIN_EMAIL", ""),
		Password:  AdminPassword(loadWithDefault("ADMIN_PASSWORD", "")),
	}

	if err := validate(conf); err != nil {
		return conf, err
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	// Read file
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into config
	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = "/data/secret"
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = "1"
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = "http://localhost:8080"
	}
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Database.Driver == "" {
		config.Database.Driver = DatabaseDriverSQLite
	}
	if config.Database.Driver == DatabaseDriverSQLite && config.Database.Path == "" {
		config.Database.Path = "/data/foodgram.db"
	}
	if config.Database.Host == "" {
		config.Database.Host = "localhost"
	}
	if config.Database.Port == 0 {
		config.Database.Port = 5432
	}
	if config.FileStore.Driver == "" {
		config.FileStore.Driver = FileStoreDriverLocal
	}
	if config.FileStore.Driver == FileStoreDriverLocal && config.FileStore.Volume == "" {
		config.FileStore.Volume = "/data/media"
	}
	if config.FileStore.URLPrefix == "" {
		config.FileStore.URLPrefix = "/media"
	}

	if err := validate(config); err != nil {
		return Config{}, err
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// loadDotEnv seeds the process environment from a .env file. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if !configFileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads the YAML file at CONFIG_PATH when it exists and falls
// back to environment variables otherwise.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(loadWithDefault("DOTENV_PATH", defaultDotEnvPath)); err != nil {
		return Config{}, err
	}

	configFilePath := loadWithDefault("CONFIG_PATH", defaultConfigFilePath)
	if configFileExists(configFilePath) {
		return loadConfigFromFile(configFilePath)
	}

	return loadConfigFromEnv()
}
