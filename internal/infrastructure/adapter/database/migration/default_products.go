package migration

import (
	"context"
	"errors"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/repository"
)

// defaultProducts is the initial storefront catalog
var defaultProducts = []entity.Product{
	{
		ID:          "botpress-expert",
		Name:        "BotPress Expert",
		Description: "Master chatbot building and management with our premier BotPress development service.",
		PriceUSD:    149,
		PriceCOP:    596000,
	},
	{
		ID:          "voiceflow-assistant",
		Name:        "Voiceflow Assistant",
		Description: "Create sophisticated, voice-enabled applications and assistants for any platform.",
		PriceUSD:    129,
		PriceCOP:    516000,
	},
	{
		ID:          "manychat-automator",
		Name:        "ManyChat Automator",
		Description: "Automate your Messenger marketing to engage customers and drive sales effortlessly.",
		PriceUSD:    99,
		PriceCOP:    396000,
	},
	{
		ID:          "dialogflow-integrator",
		Name:        "Dialogflow Integrator",
		Description: "Integrate powerful conversational AI into your apps with Google's Dialogflow.",
		PriceUSD:    119,
		PriceCOP:    476000,
	},
}

// SeedDefaultProducts creates the default catalog products if missing
func SeedDefaultProducts(ctx context.Context, products *repository.ProductRepository) error {
	for i := range defaultProducts {
		product := defaultProducts[i]

		_, err := products.GetByID(ctx, product.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrProductNotFound) {
			return err
		}

		if err := products.Create(ctx, &product); err != nil {
			return err
		}
	}

	return nil
}
