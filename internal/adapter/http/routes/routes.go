package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "framecraft/docs" // This will be auto-generated
	"framecraft/internal/adapter/http/handlers"
	repository2 "framecraft/internal/adapter/persistence/repository"
	"framecraft/internal/domain/entities"
	"framecraft/internal/infrastructure/database"
	"framecraft/internal/infrastructure/payments"
	"framecraft/internal/infrastructure/shipping"
	"framecraft/internal/usecase"
	"framecraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zlog.With().Str("service", "framecraft-checkout").Logger()

	ddb := database.ConnectDynamoDB()

	cartRepo := repository2.NewCartDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	discountRepo := repository2.NewDiscountDynamoRepository(ddb)

	calculator := usecase.NewPricingCalculator(taxConfigFromEnv(), os.Getenv("PRICING_CURRENCY"))

	// The rate client points at this same service by default; the storefront
	// and the checkout flow share one rate endpoint.
	rateClient := shipping.NewClient(shipping.Config{
		BaseURL: getenvDefault("SHIPPING_RATES_URL", "http://localhost:8080"),
	}, tokenProviderFromEnv(), logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("mercado pago gateway not configured; orders stay pending")
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(calculator, rateClient, discountRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartRepo, orderRepo, discountRepo, rateClient, paymentGateway, calculator)
	discountUseCase := usecase.NewDiscountUseCase(discountRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	discountHandler := handlers.NewDiscountHandler(discountUseCase)
	ratesHandler := handlers.NewShippingRatesHandler(calculator)

	// Public storefront routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, quoteHandler, cartHandler, checkoutHandler, discountHandler)

	// Wire contract shared with the storefront's shipping client.
	api := router.Group("/api")
	api.POST("/cart/shipping", ratesHandler.CalculateRate)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func taxConfigFromEnv() *entities.TaxConfig {
	v := os.Getenv("TAX_RATE")
	if v == "" {
		return nil
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid TAX_RATE %q, using default", v)
		return nil
	}
	return &entities.TaxConfig{Rate: rate, Region: os.Getenv("TAX_REGION")}
}

func tokenProviderFromEnv() shipping.TokenProvider {
	token := os.Getenv("SHIPPING_API_TOKEN")
	if token == "" {
		return nil
	}
	return func(_ context.Context) (string, error) {
		return token, nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
