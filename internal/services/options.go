// Package services wires the application together: Spanner client,
// repositories, use cases, queries, and HTTP handlers.
package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	catalogrepo "github.com/light-bringer/ecom-backoffice/internal/app/catalog/repo"

	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/get_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/create_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/delete_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/restore_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/restore_product"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/update_category"
	"github.com/light-bringer/ecom-backoffice/internal/app/catalog/usecases/update_product"

	salesrepo "github.com/light-bringer/ecom-backoffice/internal/app/sales/repo"

	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/get_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/list_events"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/list_sales"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/queries/sales_summary"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/create_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/delete_sale"
	"github.com/light-bringer/ecom-backoffice/internal/app/sales/usecases/update_sale"

	"github.com/light-bringer/ecom-backoffice/internal/pkg/clock"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
	transport "github.com/light-bringer/ecom-backoffice/internal/transport/http"
)

// ServiceOptions holds all wired dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handlers      *transport.Handlers
	Logger        *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, logger *zap.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// Catalog context
	productRepo := catalogrepo.NewProductRepo(spannerClient, clk)
	categoryRepo := catalogrepo.NewCategoryRepo(spannerClient, clk)
	outboxRepo := catalogrepo.NewOutboxRepo(spannerClient)
	catalogReadModel := catalogrepo.NewReadModel(spannerClient)

	productsHandler := transport.NewProductsHandler(
		create_product.NewInteractor(productRepo, categoryRepo, outboxRepo, comm, clk),
		update_product.NewInteractor(productRepo, categoryRepo, outboxRepo, comm),
		delete_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		restore_product.NewInteractor(productRepo, outboxRepo, comm),
		get_product.NewQuery(catalogReadModel),
		list_products.NewQuery(catalogReadModel),
		logger,
	)

	categoriesHandler := transport.NewCategoriesHandler(
		create_category.NewInteractor(categoryRepo, comm, clk),
		update_category.NewInteractor(categoryRepo, comm),
		delete_category.NewInteractor(categoryRepo, comm, clk),
		restore_category.NewInteractor(categoryRepo, comm),
		get_category.NewQuery(catalogReadModel),
		list_categories.NewQuery(catalogReadModel),
		logger,
	)

	// Sales context
	txRunner := salesrepo.NewSpannerTxRunner(spannerClient, clk)
	salesReadModel := salesrepo.NewReadModel(spannerClient, logger)
	eventsReadModel := salesrepo.NewEventsReadModel(spannerClient)

	salesHandler := transport.NewSalesHandler(
		create_sale.NewInteractor(txRunner, clk, logger),
		update_sale.NewInteractor(txRunner, clk, logger),
		delete_sale.NewInteractor(txRunner, clk, logger),
		get_sale.NewQuery(salesReadModel),
		list_sales.NewQuery(salesReadModel),
		sales_summary.NewQuery(salesReadModel),
		logger,
	)

	eventsHandler := transport.NewEventsHandler(list_events.NewQuery(eventsReadModel), logger)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Logger:        logger,
		Handlers: &transport.Handlers{
			Products:   productsHandler,
			Categories: categoriesHandler,
			Sales:      salesHandler,
			Events:     eventsHandler,
		},
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
