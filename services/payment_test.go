package services

import (
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
)

func (s *OrderServiceSuite) paymentSummary(currency string, extras ...uint) PaymentSummary {
	return PaymentSummary{
		CurrencyCode:     currency,
		Extras:           extras,
		ExtrasTotalPrice: decimal.RequireFromString("14.99"),
		TotalPrice:       decimal.RequireFromString("99.99"),
		CostPerPage:      decimal.RequireFromString("17.00"),
	}
}

func (s *OrderServiceSuite) TestSavePayment_NoOrderID() {
	result, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		Payment: s.paymentSummary("USD"),
	})
	s.Require().NoError(err)
	s.Equal(ResponseNoOrderID, result.Response)
	s.Nil(result.NewOrder)
}

func (s *OrderServiceSuite) TestSavePayment_UpdatesExistingDetail() {
	orderID := s.placeOrder(clientEmail, "public")

	result, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: orderID,
		Payment: s.paymentSummary("GBP", s.extraID("Top writer")),
	})
	s.Require().NoError(err)
	s.Equal(ResponseSuccess, result.Response)
	s.Require().NotNil(result.NewOrder)
	s.False(*result.NewOrder)

	s.EqualValues(1, s.count(&models.OrderPaymentDetail{}, "order_id = ?", orderID))

	var detail models.OrderPaymentDetail
	s.Require().NoError(s.db.Preload("Currency").Preload("Extras").Where("order_id = ?", orderID).Take(&detail).Error)
	s.Equal("GBP", detail.Currency.Code)
	s.True(detail.Total.Equal(decimal.RequireFromString("99.99")))
	s.Require().Len(detail.Extras, 1)
	s.Equal("Top writer", detail.Extras[0].Name)

	s.EqualValues(1, s.count(&models.ClientOrderPostingStep{}, "order_id = ? AND last_step = ?", orderID, StepCheckout))
}

func (s *OrderServiceSuite) TestSavePayment_ClearsExtras() {
	orderID := s.placeOrder(clientEmail, "public")

	_, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: orderID,
		Payment: s.paymentSummary("USD"),
	})
	s.Require().NoError(err)

	var detail models.OrderPaymentDetail
	s.Require().NoError(s.db.Preload("Extras").Where("order_id = ?", orderID).Take(&detail).Error)
	s.Empty(detail.Extras)
}

func (s *OrderServiceSuite) TestSavePayment_UsesFallbackOrderID() {
	orderID := s.placeOrder(clientEmail, "public")

	result, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:           clientEmail,
		FallbackOrderID: orderID,
		Payment:         s.paymentSummary("USD"),
	})
	s.Require().NoError(err)
	s.Equal(ResponseSuccess, result.Response)
}

func (s *OrderServiceSuite) TestSavePayment_CreatesMissingDetail() {
	orderID := s.placeOrder(clientEmail, "public")
	s.Require().NoError(s.db.Where("order_id = ?", orderID).Delete(&models.OrderPaymentDetail{}).Error)

	result, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: orderID,
		Payment: s.paymentSummary("USD", s.extraID("Abstract page")),
	})
	s.Require().NoError(err)
	s.Equal(ResponseSuccess, result.Response)
	s.Equal(orderID, result.OrderID)
	s.Nil(result.NewOrder)
	s.EqualValues(1, s.count(&models.OrderPaymentDetail{}, "order_id = ?", orderID))
	s.EqualValues(1, s.count(&models.ClientOrderPostingStep{}, "order_id = ? AND client_id = ? AND last_step = ?", orderID, s.client.ID, StepCheckout))
}

func (s *OrderServiceSuite) TestSavePayment_ForeignOrderFails() {
	orderID := s.placeOrder(otherEmail, "public")

	_, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: orderID,
		Payment: s.paymentSummary("GBP"),
	})
	s.Require().ErrorIs(err, ErrLookupFailed)

	var detail models.OrderPaymentDetail
	s.Require().NoError(s.db.Preload("Currency").Where("order_id = ?", orderID).Take(&detail).Error)
	s.Equal("USD", detail.Currency.Code)
}

func (s *OrderServiceSuite) TestSavePayment_UnknownCurrencyFails() {
	orderID := s.placeOrder(clientEmail, "public")

	_, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: orderID,
		Payment: s.paymentSummary("ZZZ"),
	})
	s.ErrorIs(err, ErrLookupFailed)
}

func (s *OrderServiceSuite) TestConfirmClientPayment_StartsPendingOrder() {
	orderID := s.placeOrder(clientEmail, "public")
	s.forceStatus(orderID, models.StatusPendingPayment)

	result, err := s.service.ConfirmClientPayment(s.ctx, ConfirmPaymentRequest{
		Email:        clientEmail,
		OrderID:      orderID,
		Amount:       decimal.RequireFromString("84.99"),
		CurrencyCode: "USD",
		Reference:    "pi_123",
	})
	s.Require().NoError(err)
	s.True(result.Recorded)
	s.True(result.StatusUpdated)
	s.Equal(models.StatusOngoing, s.statusOf(orderID))
	s.EqualValues(1, s.count(&models.ClientPayment{}, "order_id = ? AND status = ?", orderID, models.PaymentStatusSuccess))
}

func (s *OrderServiceSuite) TestConfirmClientPayment_AvailableOrderKeepsStatus() {
	orderID := s.placeOrder(clientEmail, "public")

	result, err := s.service.ConfirmClientPayment(s.ctx, ConfirmPaymentRequest{
		Email:        clientEmail,
		OrderID:      orderID,
		Amount:       decimal.RequireFromString("10"),
		CurrencyCode: "USD",
		Reference:    "pi_456",
	})
	s.Require().NoError(err)
	s.True(result.Recorded)
	s.False(result.StatusUpdated)
	s.Equal(models.StatusAvailable, s.statusOf(orderID))
}

func (s *OrderServiceSuite) TestConfirmClientPayment_ForeignOrder() {
	orderID := s.placeOrder(otherEmail, "public")

	result, err := s.service.ConfirmClientPayment(s.ctx, ConfirmPaymentRequest{
		Email:        clientEmail,
		OrderID:      orderID,
		Amount:       decimal.RequireFromString("10"),
		CurrencyCode: "USD",
		Reference:    "pi_789",
	})
	s.Require().NoError(err)
	s.False(result.Recorded)
	s.Equal(MessageOrderNotFound, result.Message)
	s.Zero(s.count(&models.ClientPayment{}, "1 = 1"))
}

func (s *OrderServiceSuite) TestConfirmClientPayment_RejectsNonPositiveAmount() {
	_, err := s.service.ConfirmClientPayment(s.ctx, ConfirmPaymentRequest{
		Email:        clientEmail,
		OrderID:      1,
		Amount:       decimal.Zero,
		CurrencyCode: "USD",
	})
	var validation *ValidationError
	s.ErrorAs(err, &validation)
}
