package services

import (
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/tests/testutil"
	"github.com/shopspring/decimal"
)

func (s *OrderServiceSuite) TestGetOrders_CreateThenList() {
	orderID := s.placeOrder(clientEmail, "public")
	s.placeOrder(otherEmail, "public")

	orders, err := s.service.GetOrders(s.ctx, clientEmail, 0)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(orderID, orders[0].ID)
	s.Equal(models.StatusAvailable, orders[0].Status.Name)
	s.NotNil(orders[0].Discipline)
	s.NotNil(orders[0].EducationLevel)
	s.NotNil(orders[0].DayTime)
	s.Require().NotNil(orders[0].PaymentDetail)
	s.Equal("USD", orders[0].PaymentDetail.Currency.Code)
}

func (s *OrderServiceSuite) TestGetOrders_NewestFirstAndStatusFilter() {
	first := s.placeOrder(clientEmail, "public")
	second := s.placeOrder(clientEmail, "private")
	s.forceStatus(first, models.StatusCompleted)

	orders, err := s.service.GetOrders(s.ctx, clientEmail, 0)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal(second, orders[0].ID)

	completed := testutil.RefID[models.OrderStatus](s.T(), s.db, "name", models.StatusCompleted)
	orders, err = s.service.GetOrders(s.ctx, clientEmail, completed)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(first, orders[0].ID)
}

func (s *OrderServiceSuite) TestGetOrders_SkipsDeleted() {
	orderID := s.placeOrder(clientEmail, "public")
	s.Require().NoError(s.db.Delete(&models.Order{}, orderID).Error)

	orders, err := s.service.GetOrders(s.ctx, clientEmail, 0)
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *OrderServiceSuite) TestGetOrder_Detail() {
	orderID := s.placeOrder(clientEmail, "private")
	req := s.orderRequest(clientEmail, "private")
	req.OrderID = orderID
	req.Files = append(req.Files, SupportingFile{FileURL: s.documentKey(clientEmail, "later.pdf"), OriginalName: "later.pdf"})
	_, err := s.service.PlaceOrder(s.ctx, req)
	s.Require().NoError(err)

	detail, err := s.service.GetOrder(s.ctx, clientEmail, orderID)
	s.Require().NoError(err)
	s.Require().NotNil(detail)

	order := detail.Order
	s.Equal("Writing", order.ServiceType.Name)
	s.Equal("APA", order.CitationStyle.Name)
	s.True(order.Format.InUse)
	s.NotNil(order.AssignmentType)
	s.Require().Len(order.Files, 2)
	s.Equal("later.pdf", order.Files[0].FileName, "newest file first")
	s.Equal(models.FileTypeClientSupporting, order.Files[0].FileType.Name)
	s.Len(order.PaymentDetail.Extras, 1)

	s.Nil(detail.Writer)
	s.Empty(detail.Revisions)
	s.Empty(detail.SubmissionChecklist)
	s.False(detail.Rated)
}

func (s *OrderServiceSuite) TestGetOrder_RevisableIncludesChecklistAndRevisions() {
	orderID := s.placeOrder(clientEmail, "private")
	s.assign(orderID)
	s.forceStatus(orderID, models.StatusCompleted)
	_, err := s.service.RequestRevision(s.ctx, s.revisionRequest(clientEmail, orderID))
	s.Require().NoError(err)
	_, err = s.service.RateWriter(s.ctx, orderID, 4)
	s.Require().NoError(err)

	detail, err := s.service.GetOrder(s.ctx, clientEmail, orderID)
	s.Require().NoError(err)
	s.Require().NotNil(detail)

	s.Len(detail.Revisions, 1)
	s.NotEmpty(detail.SubmissionChecklist)
	s.True(detail.Rated)
	s.Require().NotNil(detail.Writer)
	s.Equal("Writer One", detail.Writer.User.Name)
}

func (s *OrderServiceSuite) TestGetOrder_ForeignOrderIsNil() {
	orderID := s.placeOrder(otherEmail, "public")

	detail, err := s.service.GetOrder(s.ctx, clientEmail, orderID)
	s.Require().NoError(err)
	s.Nil(detail)

	order, err := s.service.ClientOrder(s.ctx, clientEmail, orderID)
	s.Require().NoError(err)
	s.Nil(order)

	order, err = s.service.ClientOrder(s.ctx, otherEmail, orderID)
	s.Require().NoError(err)
	s.Require().NotNil(order)
	s.Equal(orderID, order.ID)
}

func (s *OrderServiceSuite) TestResumeOrder_NoOrder() {
	result, err := s.service.ResumeOrder(s.ctx, clientEmail, 0, false)
	s.Require().NoError(err)
	s.False(result.OrderExists)
	s.Nil(result.Order)
}

func (s *OrderServiceSuite) TestResumeOrder_UnpaidOrder() {
	s.placeOrder(clientEmail, "public")
	latest := s.placeOrder(clientEmail, "private")
	s.assign(latest)
	s.forceStatus(latest, models.StatusPendingPayment)
	_, err := s.service.SavePayment(s.ctx, SavePaymentRequest{
		Email:   clientEmail,
		OrderID: latest,
		Payment: s.paymentSummary("USD"),
	})
	s.Require().NoError(err)

	result, err := s.service.ResumeOrder(s.ctx, clientEmail, 0, false)
	s.Require().NoError(err)
	s.True(result.OrderExists)
	s.False(result.Paid)
	s.Equal(latest, result.Order.ID)
	s.True(result.Discount.Equal(decimal.NewFromInt(5)), "five pages fall in the 5 page tier")
	s.Require().NotNil(result.PaymentDetail)
	s.Equal("USD", result.PaymentDetail.Currency.Code)
	s.Require().NotNil(result.Writer)
	s.Equal(s.writer.ID, result.Writer.ID)
	s.Len(result.Files, 1)
	s.Equal(StepCheckout, result.LastStep)
}

func (s *OrderServiceSuite) TestResumeOrder_PaidOrder() {
	orderID := s.placeOrder(clientEmail, "private")
	s.forceStatus(orderID, models.StatusOngoing)

	result, err := s.service.ResumeOrder(s.ctx, clientEmail, orderID, false)
	s.Require().NoError(err)
	s.True(result.OrderExists)
	s.True(result.Paid)
	s.Nil(result.PaymentDetail)
	s.Nil(result.Writer)
	s.Empty(result.Files)
	s.Zero(result.LastStep)
}

func (s *OrderServiceSuite) TestResumeOrder_GotStartedCountsAsPaid() {
	orderID := s.placeOrder(clientEmail, "public")

	result, err := s.service.ResumeOrder(s.ctx, clientEmail, orderID, true)
	s.Require().NoError(err)
	s.True(result.Paid)
	s.Nil(result.PaymentDetail)
}

func (s *OrderServiceSuite) TestResumeOrder_SpecificForeignOrder() {
	orderID := s.placeOrder(otherEmail, "public")

	result, err := s.service.ResumeOrder(s.ctx, clientEmail, orderID, false)
	s.Require().NoError(err)
	s.False(result.OrderExists)
}

func (s *OrderServiceSuite) TestPageDiscount() {
	tests := []struct {
		pages int
		want  string
	}{
		{0, "0"},
		{1, "0"},
		{2, "3"},
		{4, "3"},
		{5, "5"},
		{19, "10"},
		{20, "15"},
		{250, "15"},
	}

	for _, tt := range tests {
		got, err := pageDiscount(s.db, tt.pages)
		s.Require().NoError(err)
		s.True(got.Equal(decimal.RequireFromString(tt.want)), "pages=%d got %s", tt.pages, got)
	}
}

func (s *OrderServiceSuite) TestPageDiscount_NoTiers() {
	s.Require().NoError(s.db.Where("1 = 1").Delete(&models.PageDiscount{}).Error)

	got, err := pageDiscount(s.db, 12)
	s.Require().NoError(err)
	s.True(got.IsZero())
}
