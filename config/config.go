package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type pricing struct {
	TaxRate          float64 `mapstructure:"tax_rate"`
	FreeShippingOver int64   `mapstructure:"free_shipping_over"`
	FlatShippingFee  int64   `mapstructure:"flat_shipping_fee"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	CatalogFile    string     `mapstructure:"catalog_file"`
	Pricing        pricing    `mapstructure:"pricing"`
}

func Load() Config {
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("pricing.tax_rate", 0.18)
	viper.SetDefault("pricing.free_shipping_over", 5000)
	viper.SetDefault("pricing.flat_shipping_fee", 199)

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	CatalogFile=%q

	Pricing:
	TaxRate=%v
	FreeShippingOver=%d
	FlatShippingFee=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.CatalogFile,
		c.Pricing.TaxRate,
		c.Pricing.FreeShippingOver,
		c.Pricing.FlatShippingFee,
	)
}
