// file: internals/features/bookings/booking/controller/booking_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/bookings/booking/dto"
	model "sukaza_backend/internals/features/bookings/booking/model"
	propertyModel "sukaza_backend/internals/features/properties/property/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type BookingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewBookingController(db *gorm.DB, c *cache.Cache) *BookingController {
	c.Declare("booking.create", "bookings.list:*")
	c.Declare("booking.patch", "bookings.list:*")
	c.Declare("booking.status", "bookings.list:*")
	c.Declare("booking.delete", "bookings.list:*")
	return &BookingController{DB: db, Validator: validator.New(), Cache: c}
}

var bookingSortWhitelist = map[string]string{
	"check_in":   "booking_check_in",
	"check_out":  "booking_check_out",
	"guest":      "booking_guest_name",
	"created_at": "booking_created_at",
}

// =====================================================
// GET /api/bookings
// =====================================================
func (ctrl *BookingController) List(c *fiber.Ctx) error {
	cacheKey := "bookings.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Bookings fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "check_in", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(bookingSortWhitelist, "check_in")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.BookingModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("booking_property_id = ?", pid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("booking_status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("booking_check_in >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("booking_check_out <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count bookings")
	}

	var bookings []model.BookingModel
	if err := q.
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&bookings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	payload := fiber.Map{
		"items": dto.FromModelBookings(bookings),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Bookings fetched successfully", payload)
}

// =====================================================
// GET /api/bookings/:id
// =====================================================
func (ctrl *BookingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var booking model.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch booking")
	}

	return helper.Success(c, "Booking fetched successfully", dto.FromModelBooking(&booking))
}

// =====================================================
// POST /api/bookings
// =====================================================
func (ctrl *BookingController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBookings); err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.BookingCheckOut.After(req.BookingCheckIn) {
		return helper.Error(c, fiber.StatusBadRequest, "check_out must be after check_in")
	}

	var propCount int64
	if err := ctrl.DB.Model(&propertyModel.PropertyModel{}).
		Where("property_id = ?", req.BookingPropertyID).
		Count(&propCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify property")
	}
	if propCount == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Property does not exist")
	}

	booking := req.ToModel()
	if err := ctrl.DB.Create(booking).Error; err != nil {
		log.Printf("[BOOKING] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create booking")
	}

	ctrl.Cache.Invalidate("booking.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Booking created successfully", dto.FromModelBooking(booking))
}

// =====================================================
// PATCH /api/bookings/:id
// =====================================================
func (ctrl *BookingController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBookings); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.PatchBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var booking model.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch booking")
	}

	req.ApplyTo(&booking)
	if !booking.BookingCheckOut.After(booking.BookingCheckIn) {
		return helper.Error(c, fiber.StatusBadRequest, "check_out must be after check_in")
	}

	if err := ctrl.DB.Save(&booking).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update booking")
	}

	ctrl.Cache.Invalidate("booking.patch")
	return helper.Success(c, "Booking updated successfully", dto.FromModelBooking(&booking))
}

// =====================================================
// PUT /api/bookings/:id/status
// =====================================================
func (ctrl *BookingController) ChangeStatus(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBookings); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var booking model.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch booking")
	}

	target := model.BookingStatus(req.Status)
	if target != booking.BookingStatus && !model.CanTransition(booking.BookingStatus, target) {
		return helper.Error(c, fiber.StatusBadRequest, "Illegal status transition")
	}

	booking.BookingStatus = target
	if err := ctrl.DB.Save(&booking).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update booking status")
	}

	ctrl.Cache.Invalidate("booking.status")
	return helper.Success(c, "Booking status updated successfully", dto.FromModelBooking(&booking))
}

// =====================================================
// DELETE /api/bookings/:id
// =====================================================
func (ctrl *BookingController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBookings); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	res := ctrl.DB.Delete(&model.BookingModel{}, "booking_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete booking")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Booking not found")
	}

	ctrl.Cache.Invalidate("booking.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
