package handler

import (
	"swapbook/internal/usecase"
	"swapbook/pkg/config"
)

var (
	authHandler    *AuthHandler
	listingHandler *ListingHandler
	paymentHandler *PaymentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	cfg *config.Config,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase, authUseCase)
	paymentHandler = NewPaymentHandler(cfg)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}
