package services

import (
	"github.com/kendall-kelly/essay-orders-api/models"
)

func (s *OrderServiceSuite) TestRateWriter_FirstRatingSeedsAverage() {
	orderID := s.placeOrder(clientEmail, "private")
	s.assign(orderID)

	result, err := s.service.RateWriter(s.ctx, orderID, 4)
	s.Require().NoError(err)
	s.True(result.Rated)
	s.False(result.AlreadyRated)
	s.Equal(s.writer.ID, result.WriterID)
	s.InDelta(4.0, result.Average, 1e-9)
}

func (s *OrderServiceSuite) TestRateWriter_SecondRatingOfSameOrder() {
	orderID := s.placeOrder(clientEmail, "private")
	s.assign(orderID)

	_, err := s.service.RateWriter(s.ctx, orderID, 5)
	s.Require().NoError(err)

	result, err := s.service.RateWriter(s.ctx, orderID, 1)
	s.Require().NoError(err)
	s.False(result.Rated)
	s.True(result.AlreadyRated)

	var avg models.WriterAverageRating
	s.Require().NoError(s.db.Where("writer_id = ?", s.writer.ID).Take(&avg).Error)
	s.InDelta(5.0, avg.Average, 1e-9, "average changes only once")
	s.EqualValues(1, s.count(&models.WriterRating{}, "order_id = ?", orderID))
}

func (s *OrderServiceSuite) TestRateWriter_RunningAverageAcrossOrders() {
	ratings := []float64{5, 4, 3}
	var last *RatingResult
	for _, r := range ratings {
		orderID := s.placeOrder(clientEmail, "private")
		s.assign(orderID)

		result, err := s.service.RateWriter(s.ctx, orderID, r)
		s.Require().NoError(err)
		s.Require().True(result.Rated)
		last = result
	}

	s.InDelta(4.0, last.Average, 1e-9)
	s.EqualValues(1, s.count(&models.WriterAverageRating{}, "writer_id = ?", s.writer.ID))
}

func (s *OrderServiceSuite) TestRateWriter_WithoutWriterFails() {
	orderID := s.placeOrder(clientEmail, "private")

	_, err := s.service.RateWriter(s.ctx, orderID, 4)
	s.Require().ErrorIs(err, ErrLookupFailed)
	s.Zero(s.count(&models.WriterRating{}, "1 = 1"))
}

func (s *OrderServiceSuite) TestRateWriter_RejectsOutOfRange() {
	for _, r := range []float64{0, 5.5, -1} {
		_, err := s.service.RateWriter(s.ctx, 1, r)
		var validation *ValidationError
		s.ErrorAs(err, &validation)
	}
}
