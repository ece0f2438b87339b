package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/routemark/borders-api/store"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("borders")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	feed := store.FileFeed{
		BordersPath: viper.GetString("borders.file"),
		IDsPath:     viper.GetString("borders.ids"),
		OpenPath:    viper.GetString("borders.open"),
	}

	holder := store.NewHolder(feed)

	// A load failure here must keep the process from ever reaching a ready
	// state; serving with a partial border index could misclassify crossings.
	if err := holder.Reload(); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(5 * time.Second)
		log.WithField("prefix", "init").Fatalf("load border index: %s", err)
	}
	log.WithField("prefix", "init").Info("Border index ready")

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	for s := range c {
		switch s {
		case syscall.SIGHUP:
			log.WithField("prefix", "init").Info("Reloading border index")
			if err := holder.Reload(); err != nil {
				// keep serving the previous snapshot
				sentry.CaptureException(err)
				log.WithField("prefix", "init").Errorf("reload border index: %s", err)
				continue
			}
			log.WithField("prefix", "init").Info("Border index reloaded")
		default:
			log.Info("Server is preparing to shutdown")
			sentry.Flush(5 * time.Second)
			os.Exit(0)
		}
	}
}
