package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/ibancheck/internal/config"
	"github.com/allisson/ibancheck/internal/database"
	ibanHTTP "github.com/allisson/ibancheck/internal/iban/http"
	"github.com/allisson/ibancheck/internal/iban/registry"
	ibanMySQL "github.com/allisson/ibancheck/internal/iban/repository/mysql"
	ibanPostgreSQL "github.com/allisson/ibancheck/internal/iban/repository/postgresql"
	"github.com/allisson/ibancheck/internal/iban/service"
	ibanUseCase "github.com/allisson/ibancheck/internal/iban/usecase"
)

const (
	connectTimeout      = 10 * time.Second
	registryLoadTimeout = 30 * time.Second
)

// Registry returns the country registry loaded from the configured source.
func (c *Container) Registry() (*registry.Registry, error) {
	var err error
	c.registryInit.Do(func() {
		c.registry, err = c.initRegistry()
		if err != nil {
			c.initErrors["registry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["registry"]; exists {
		return nil, storedErr
	}
	return c.registry, nil
}

// Checksum returns the MOD 97-10 checksum engine.
func (c *Container) Checksum() service.Checksum {
	c.checksumInit.Do(func() {
		c.checksum = service.NewMod97()
	})
	return c.checksum
}

// Validator returns the IBAN validator bound to the registry.
func (c *Container) Validator() (*service.Validator, error) {
	var err error
	c.validatorInit.Do(func() {
		c.validator, err = c.initValidator()
		if err != nil {
			c.initErrors["validator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["validator"]; exists {
		return nil, storedErr
	}
	return c.validator, nil
}

// Generator returns the IBAN generator bound to the registry.
func (c *Container) Generator() (*service.Generator, error) {
	var err error
	c.generatorInit.Do(func() {
		c.generator, err = c.initGenerator()
		if err != nil {
			c.initErrors["generator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["generator"]; exists {
		return nil, storedErr
	}
	return c.generator, nil
}

// SpecRepository returns the registry record repository based on database driver.
func (c *Container) SpecRepository() (ibanUseCase.SpecRepository, error) {
	var err error
	c.specRepositoryInit.Do(func() {
		c.specRepository, err = c.initSpecRepository()
		if err != nil {
			c.initErrors["specRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["specRepository"]; exists {
		return nil, storedErr
	}
	return c.specRepository, nil
}

// IbanUseCase returns the IBAN use case.
func (c *Container) IbanUseCase() (ibanUseCase.IbanUseCase, error) {
	var err error
	c.ibanUseCaseInit.Do(func() {
		c.ibanUseCase, err = c.initIbanUseCase()
		if err != nil {
			c.initErrors["ibanUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ibanUseCase"]; exists {
		return nil, storedErr
	}
	return c.ibanUseCase, nil
}

// RegistryUseCase returns the registry seeding use case.
func (c *Container) RegistryUseCase() (ibanUseCase.RegistryUseCase, error) {
	var err error
	c.registryUseCaseInit.Do(func() {
		c.registryUseCase, err = c.initRegistryUseCase()
		if err != nil {
			c.initErrors["registryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["registryUseCase"]; exists {
		return nil, storedErr
	}
	return c.registryUseCase, nil
}

// IbanHandler returns the IBAN HTTP handler.
func (c *Container) IbanHandler() (*ibanHTTP.IbanHandler, error) {
	var err error
	c.ibanHandlerInit.Do(func() {
		c.ibanHandler, err = c.initIbanHandler()
		if err != nil {
			c.initErrors["ibanHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ibanHandler"]; exists {
		return nil, storedErr
	}
	return c.ibanHandler, nil
}

// initRegistry loads the registry and logs every documentation example that fails to validate.
func (c *Container) initRegistry() (*registry.Registry, error) {
	logger := c.Logger()

	var (
		reg *registry.Registry
		err error
	)

	switch c.config.RegistrySource {
	case config.RegistrySourceEmbedded, "":
		reg, err = registry.Default()
	case config.RegistrySourceFile:
		reg, err = registry.LoadFile(c.config.RegistryFile)
	case config.RegistrySourceDatabase:
		specRepository, repoErr := c.SpecRepository()
		if repoErr != nil {
			return nil, fmt.Errorf("failed to get spec repository for registry: %w", repoErr)
		}

		ctx, cancel := context.WithTimeout(context.Background(), registryLoadTimeout)
		defer cancel()

		reg, err = registry.FromSource(ctx, specRepository)
	default:
		return nil, fmt.Errorf("unsupported registry source: %s", c.config.RegistrySource)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load registry from %s: %w", c.config.RegistrySource, err)
	}

	failures := reg.SelfCheck(service.NewValidator(reg, c.Checksum()))
	for _, failure := range failures {
		logger.Warn("registry example does not validate",
			slog.String("country", failure.Country),
			slog.String("kind", failure.Kind),
			slog.String("example", failure.Example),
			slog.Any("error", failure.Err))
	}

	logger.Debug("registry loaded",
		slog.String("source", c.config.RegistrySource),
		slog.Int("countries", reg.Len()),
		slog.Int("failing_examples", len(failures)))

	return reg, nil
}

// initValidator creates the validator over the loaded registry.
func (c *Container) initValidator() (*service.Validator, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry for validator: %w", err)
	}
	return service.NewValidator(reg, c.Checksum()), nil
}

// initGenerator creates the generator over the loaded registry.
func (c *Container) initGenerator() (*service.Generator, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry for generator: %w", err)
	}
	return service.NewGenerator(reg, c.Checksum()), nil
}

// initSpecRepository creates the registry record repository for the configured driver.
func (c *Container) initSpecRepository() (ibanUseCase.SpecRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for spec repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return ibanMySQL.NewMySQLSpecRepository(db), nil
	case database.DriverPostgres:
		return ibanPostgreSQL.NewPostgreSQLSpecRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initIbanUseCase creates the IBAN use case with all its dependencies.
func (c *Container) initIbanUseCase() (ibanUseCase.IbanUseCase, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry for iban use case: %w", err)
	}

	validator, err := c.Validator()
	if err != nil {
		return nil, fmt.Errorf("failed to get validator for iban use case: %w", err)
	}

	generator, err := c.Generator()
	if err != nil {
		return nil, fmt.Errorf("failed to get generator for iban use case: %w", err)
	}

	baseUseCase := ibanUseCase.NewIbanUseCase(validator, generator, reg, ibanUseCase.BatchConfig{
		MaxSize:     c.config.BatchMaxSize,
		Concurrency: c.config.BatchConcurrency,
	})

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for iban use case: %w", err)
		}
		return ibanUseCase.NewIbanUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRegistryUseCase creates the registry seeding use case with all its dependencies.
func (c *Container) initRegistryUseCase() (ibanUseCase.RegistryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for registry use case: %w", err)
	}

	specRepository, err := c.SpecRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get spec repository for registry use case: %w", err)
	}

	baseUseCase := ibanUseCase.NewRegistryUseCase(txManager, specRepository)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for registry use case: %w", err)
		}
		return ibanUseCase.NewRegistryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initIbanHandler creates the IBAN HTTP handler with all its dependencies.
func (c *Container) initIbanHandler() (*ibanHTTP.IbanHandler, error) {
	useCase, err := c.IbanUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get iban use case for iban handler: %w", err)
	}

	return ibanHTTP.NewIbanHandler(useCase, c.Logger()), nil
}
