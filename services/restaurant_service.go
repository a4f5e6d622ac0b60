package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-management-api/apperr"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"
	"restaurant-management-api/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Image    string `json:"image" validate:"omitempty,httpurl"`
	Address  string `json:"address" validate:"required,min=5,max=200"`
	Contact  string `json:"contact" validate:"required,phone"`
	QRCodeID string `json:"qrcodeId" validate:"omitempty,max=64"`
}

func (in *RestaurantInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Address = strings.TrimSpace(in.Address)
	in.Contact = strings.TrimSpace(in.Contact)
	in.QRCodeID = strings.TrimSpace(in.QRCodeID)
}

var restaurantEditable = []string{"name", "image", "address", "contact"}

type RestaurantService struct {
	restaurants *repository.RestaurantRepository
	log         *zap.Logger
}

func NewRestaurantService(restaurants *repository.RestaurantRepository, log *zap.Logger) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, log: log}
}

// NewQRCodeID builds "QR-<owner>-<random>", where owner is the last six
// digits of the zero-padded owner id and random is six hex characters.
func NewQRCodeID(ownerID uint) string {
	owner := fmt.Sprintf("%06d", ownerID)
	owner = owner[len(owner)-6:]
	id := uuid.New()
	random := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("QR-%s-%s", owner, random[len(random)-6:])
}

// Create registers a restaurant owned by admin. The qrcodeId is generated
// here, once, unless the caller supplied one.
func (s *RestaurantService) Create(ctx context.Context, admin *models.Admin, in RestaurantInput) (*models.Restaurant, error) {
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	taken, err := s.restaurants.ContactTaken(ctx, in.Contact, 0)
	if err != nil {
		return nil, apperr.Internal(err, "failed to check contact")
	}
	if taken {
		return nil, apperr.New(apperr.CodeDuplicateContact, "contact %s is already used by another restaurant", in.Contact)
	}

	if in.QRCodeID != "" {
		if err := s.ensureQRCodeFree(ctx, in.QRCodeID); err != nil {
			return nil, err
		}
	}

	rest := &models.Restaurant{
		Name:     in.Name,
		Image:    in.Image,
		Address:  in.Address,
		Contact:  in.Contact,
		OwnerID:  admin.ID,
		QRCodeID: in.QRCodeID,
	}
	if rest.QRCodeID == "" {
		rest.QRCodeID = NewQRCodeID(admin.ID)
	}

	if err := s.restaurants.Create(ctx, rest); err != nil {
		return nil, s.writeError(ctx, err, in.Contact, rest.QRCodeID)
	}
	s.log.Info("restaurant created",
		zap.Uint("restaurantId", rest.ID),
		zap.Uint("ownerId", admin.ID),
		zap.String("qrcodeId", rest.QRCodeID))
	return rest, nil
}

// ListOwned returns the admin's restaurants.
func (s *RestaurantService) ListOwned(ctx context.Context, admin *models.Admin) ([]models.Restaurant, error) {
	rests, err := s.restaurants.ListByOwner(ctx, admin.ID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list restaurants")
	}
	return rests, nil
}

func (s *RestaurantService) Get(ctx context.Context, admin *models.Admin, id uint) (*models.Restaurant, error) {
	return ownedRestaurant(ctx, s.restaurants, admin, id, apperr.CodeNotFound)
}

// Update applies a whitelisted partial update. ownerId and qrcodeId never change.
func (s *RestaurantService) Update(ctx context.Context, admin *models.Admin, id uint, fields map[string]any) (*models.Restaurant, error) {
	if err := checkWhitelist(fields, restaurantEditable...); err != nil {
		return nil, err
	}
	rest, err := ownedRestaurant(ctx, s.restaurants, admin, id, apperr.CodeNotFound)
	if err != nil {
		return nil, err
	}

	in := RestaurantInput{Name: rest.Name, Image: rest.Image, Address: rest.Address, Contact: rest.Contact}
	for key, v := range fields {
		str, err := stringField(key, v)
		if err != nil {
			return nil, err
		}
		switch key {
		case "name":
			in.Name = str
		case "image":
			in.Image = str
		case "address":
			in.Address = str
		case "contact":
			in.Contact = str
		}
	}
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if in.Contact != rest.Contact {
		taken, err := s.restaurants.ContactTaken(ctx, in.Contact, rest.ID)
		if err != nil {
			return nil, apperr.Internal(err, "failed to check contact")
		}
		if taken {
			return nil, apperr.New(apperr.CodeDuplicateContact, "contact %s is already used by another restaurant", in.Contact)
		}
	}

	rest.Name, rest.Image, rest.Address, rest.Contact = in.Name, in.Image, in.Address, in.Contact
	if err := s.restaurants.Update(ctx, rest); err != nil {
		return nil, s.writeError(ctx, err, in.Contact, "")
	}
	return rest, nil
}

func (s *RestaurantService) ensureQRCodeFree(ctx context.Context, qrcodeID string) error {
	taken, err := s.restaurants.QRCodeTaken(ctx, qrcodeID)
	if err != nil {
		return apperr.Internal(err, "failed to check qrcodeId")
	}
	if taken {
		return duplicateQRCode(qrcodeID)
	}
	return nil
}

func duplicateQRCode(qrcodeID string) error {
	return apperr.New(apperr.CodeDuplicateQRCode, "qrcodeId %s is already used by another restaurant", qrcodeID)
}

// writeError maps a unique-index violation on write to the matching code.
// The driver error does not name the column, so a lost race is resolved by
// asking the store which value now collides. qrcodeID is empty on updates,
// where the column is never written.
func (s *RestaurantService) writeError(ctx context.Context, err error, contact, qrcodeID string) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return apperr.Internal(err, "failed to save restaurant")
	}
	if qrcodeID != "" {
		if taken, cerr := s.restaurants.QRCodeTaken(ctx, qrcodeID); cerr == nil && taken {
			return duplicateQRCode(qrcodeID)
		}
	}
	return apperr.New(apperr.CodeDuplicateContact, "contact %s is already used by another restaurant", contact)
}
