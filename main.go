package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/kelseyhightower/envconfig"
	"github.com/mpraski/sa-fetcher/credentials"
	"github.com/mpraski/sa-fetcher/secret"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type input struct {
	credentials.Config
	Source      string `default:"gsm"`
	EnvEncoding string `split_words:"true" default:"raw"`
	Output      string
	LogLevel    string `split_words:"true" default:"warn"`
}

const (
	app = "sa_fetcher"

	sourceGSM  = "gsm"
	sourceEnv  = "env"
	sourceFile = "file"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

func main() {
	var i input
	if err := envconfig.Process(app, &i); err != nil {
		log.Fatalf("failed to load input: %v\n", err)
	}

	level, err := log.ParseLevel(i.LogLevel)
	if err != nil {
		log.Fatalf("failed to parse log level: %v\n", err)
	}

	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	source, closeSource, err := newSource(ctx, &i)
	if err != nil {
		log.Fatalf("failed to initialize secret source: %v\n", err)
	}
	defer closeSource()

	fetcher := credentials.New(source, i.SecretName)

	log.WithFields(log.Fields{
		"source":  i.Source,
		"project": i.ProjectID,
		"secret":  fetcher.Name(),
	}).Debug("fetching service account")

	document, err := fetcher.GetServiceAccountJSON(ctx)
	if err != nil {
		closeSource()
		log.Fatalf("failed to fetch service account %s: %v\n", fetcher.Name(), err)
	}

	if err := write(i.Output, document); err != nil {
		closeSource()
		log.Fatalf("failed to write service account: %v\n", err)
	}

	log.Debug("service account written")
}

// newSource picks the backend; for env and file the secret name is the
// variable name or path respectively. opts only apply to gsm.
func newSource(ctx context.Context, i *input, opts ...option.ClientOption) (secret.Source, func(), error) {
	switch i.Source {
	case sourceGSM:
		m, err := secret.NewGoogleSecretManager(ctx, i.ProjectID, opts...)
		if err != nil {
			return nil, nil, err
		}

		return m, m.Close, nil
	case sourceEnv:
		s, err := secret.NewEnvSource(secret.Encoding(i.EnvEncoding))
		if err != nil {
			return nil, nil, err
		}

		return s, func() {}, nil
	case sourceFile:
		return secret.NewFileSource(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown secret source %q", i.Source)
	}
}

func write(output, document string) error {
	if output == "" {
		_, err := io.WriteString(os.Stdout, document)
		return err
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", output, err)
	}

	if _, err := io.WriteString(f, document); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", output, err)
	}

	return nil
}
