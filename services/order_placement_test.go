package services

import (
	"errors"
	"strings"

	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/shopspring/decimal"
)

func (s *OrderServiceSuite) TestPlaceOrder_CreatesOrder() {
	req := s.orderRequest(clientEmail, "Public")
	req.Files = append(req.Files, SupportingFile{
		FileURL:      s.documentKey(clientEmail, "long.docx"),
		OriginalName: strings.Repeat("a", 60) + ".docx",
	})

	result, err := s.service.PlaceOrder(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(ResponseSuccess, result.Response)
	s.True(result.NewOrder)
	s.NotZero(result.OrderID)

	var order models.Order
	s.Require().NoError(s.db.Preload("Status").Preload("OrderType").Preload("Format").First(&order, result.OrderID).Error)
	s.Equal(s.client.ID, order.ClientID)
	s.Equal(models.StatusAvailable, order.Status.Name)
	s.Equal(models.VisibilityPublic, order.OrderType.Name)
	s.True(order.Format.InUse)
	s.Equal("2026-12-01", order.DeadlineDate.Format("2006-01-02"))

	var steps []models.ClientOrderPostingStep
	s.Require().NoError(s.db.Where("order_id = ?", order.ID).Find(&steps).Error)
	s.Require().Len(steps, 1)
	s.Equal(StepOrderDetails, steps[0].LastStep)

	var files []models.OrderFile
	s.Require().NoError(s.db.Preload("FileType").Where("order_id = ?", order.ID).Order("id").Find(&files).Error)
	s.Require().Len(files, 2)
	s.Equal(models.FileTypeClientSupporting, files[0].FileType.Name)
	s.Len(files[1].FileName, 50)
	s.True(strings.HasSuffix(files[1].FileName, ".docx"))

	var detail models.OrderPaymentDetail
	s.Require().NoError(s.db.Preload("Currency").Preload("Extras").Where("order_id = ?", order.ID).Take(&detail).Error)
	s.Equal("USD", detail.Currency.Code)
	s.Require().Len(detail.Extras, 1)
	s.Equal("Plagiarism report", detail.Extras[0].Name)
	s.True(detail.Total.Equal(decimal.RequireFromString("84.99")))
}

func (s *OrderServiceSuite) TestPlaceOrder_EmailIsCaseInsensitive() {
	result, err := s.service.PlaceOrder(s.ctx, s.orderRequest("CLIENT@Example.com", "private"))
	s.Require().NoError(err)
	s.True(result.NewOrder)
}

func (s *OrderServiceSuite) TestPlaceOrder_UnknownClientFails() {
	_, err := s.service.PlaceOrder(s.ctx, s.orderRequest("nobody@example.com", "public"))
	s.Require().Error(err)
	s.True(errors.Is(err, ErrLookupFailed))

	var lookup *LookupError
	s.Require().True(errors.As(err, &lookup))
	s.Equal("client", lookup.Entity)
	s.Zero(s.count(&models.Order{}, "1 = 1"))
}

func (s *OrderServiceSuite) TestPlaceOrder_UnknownCurrencyRollsBack() {
	req := s.orderRequest(clientEmail, "public")
	req.Payment.CurrencyCode = "XYZ"

	_, err := s.service.PlaceOrder(s.ctx, req)
	s.Require().ErrorIs(err, ErrLookupFailed)

	s.Zero(s.count(&models.Order{}, "1 = 1"), "order insert must be rolled back")
	s.Zero(s.count(&models.ClientOrderPostingStep{}, "1 = 1"))
	s.Zero(s.count(&models.OrderFile{}, "1 = 1"))
}

func (s *OrderServiceSuite) TestPlaceOrder_UnknownReferenceFails() {
	tests := []struct {
		name   string
		mutate func(*PlaceOrderRequest)
	}{
		{"service type", func(r *PlaceOrderRequest) { r.ServiceType = "Ghostwriting" }},
		{"discipline", func(r *PlaceOrderRequest) { r.DisciplineID = 9999 }},
		{"day time", func(r *PlaceOrderRequest) { r.DayTimeID = 9999 }},
		{"extra", func(r *PlaceOrderRequest) { r.Payment.Extras = []uint{9999} }},
		{"order type", func(r *PlaceOrderRequest) { r.Type = "secret" }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.orderRequest(clientEmail, "public")
			tt.mutate(&req)

			_, err := s.service.PlaceOrder(s.ctx, req)
			s.ErrorIs(err, ErrLookupFailed)
			s.Zero(s.count(&models.Order{}, "1 = 1"))
		})
	}
}

func (s *OrderServiceSuite) TestPlaceOrder_InvalidDeadline() {
	req := s.orderRequest(clientEmail, "public")
	req.DeadlineDate = "01/12/2026"

	_, err := s.service.PlaceOrder(s.ctx, req)
	var validation *ValidationError
	s.Require().True(errors.As(err, &validation))
	s.Equal("deadlineDate", validation.Field)
}

func (s *OrderServiceSuite) TestPlaceOrder_UpdateIsIdempotentForFiles() {
	orderID := s.placeOrder(clientEmail, "public")

	req := s.orderRequest(clientEmail, "private")
	req.OrderID = orderID
	req.Topic = "Revised topic"
	req.Pages = 8
	req.Files = append(req.Files, SupportingFile{FileURL: s.documentKey(clientEmail, "extra.pdf"), OriginalName: "extra.pdf"})
	req.Payment.CurrencyCode = "EUR"
	req.Payment.Extras = []uint{s.extraID("Top writer"), s.extraID("Abstract page")}

	for i := 0; i < 2; i++ {
		result, err := s.service.PlaceOrder(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(ResponseSuccess, result.Response)
		s.False(result.NewOrder)
		s.Equal(orderID, result.OrderID)
	}

	var order models.Order
	s.Require().NoError(s.db.Preload("OrderType").First(&order, orderID).Error)
	s.Equal("Revised topic", order.Topic)
	s.Equal(8, order.Pages)
	s.Equal(models.VisibilityPrivate, order.OrderType.Name)

	s.EqualValues(2, s.count(&models.OrderFile{}, "order_id = ?", orderID), "each file attached once")
	s.EqualValues(1, s.count(&models.OrderPaymentDetail{}, "order_id = ?", orderID))
	s.EqualValues(1, s.count(&models.ClientOrderPostingStep{}, "order_id = ?", orderID), "update rewrites the step")

	var detail models.OrderPaymentDetail
	s.Require().NoError(s.db.Preload("Currency").Preload("Extras").Where("order_id = ?", orderID).Take(&detail).Error)
	s.Equal("EUR", detail.Currency.Code)
	s.Len(detail.Extras, 2)
}

func (s *OrderServiceSuite) TestPlaceOrder_UpdateKeepsStatus() {
	orderID := s.placeOrder(clientEmail, "public")
	s.forceStatus(orderID, models.StatusPendingPayment)

	req := s.orderRequest(clientEmail, "public")
	req.OrderID = orderID
	_, err := s.service.PlaceOrder(s.ctx, req)
	s.Require().NoError(err)

	s.Equal(models.StatusPendingPayment, s.statusOf(orderID))
}

func (s *OrderServiceSuite) TestPlaceOrder_UpdateOfForeignOrderFails() {
	orderID := s.placeOrder(otherEmail, "public")

	req := s.orderRequest(clientEmail, "public")
	req.OrderID = orderID
	req.Topic = "Hijacked"

	_, err := s.service.PlaceOrder(s.ctx, req)
	s.Require().ErrorIs(err, ErrLookupFailed)

	var order models.Order
	s.Require().NoError(s.db.First(&order, orderID).Error)
	s.NotEqual("Hijacked", order.Topic)
}

func (s *OrderServiceSuite) TestPlaceOrder_LogsOutcome() {
	s.placeOrder(clientEmail, "public")
	s.Equal(1, s.logs.FilterMessage("Order placed").Len())
}

func (s *OrderServiceSuite) TestClientIDByEmail() {
	id, err := s.service.ClientIDByEmail(s.ctx, " Client@Example.com ")
	s.Require().NoError(err)
	s.Equal(s.client.ID, id)

	_, err = s.service.ClientIDByEmail(s.ctx, "missing@example.com")
	s.ErrorIs(err, ErrLookupFailed)
}
