package models

import (
	"errors"
	"strings"
)

// UserProfile : champs du profil tels que stockés dans la table profiles
// et mis en miroir dans Redis sous profile:<userID>.
type UserProfile struct {
	ID               string `json:"id"`
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Phone2           string `json:"phone2,omitempty"`
	Address          string `json:"address"`
	Region           string `json:"region"`
	SocialMediaType  string `json:"socialMediaType"`
	SocialMedia      string `json:"socialMedia"`
	PreferredContact string `json:"preferredContact"`
	DeliveryLocation string `json:"deliveryLocation"`
}

// Session : reflet en mémoire de l'état du service d'identité.
type Session struct {
	User            *UserProfile `json:"user,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsOwner         bool         `json:"isOwner"`
}

// AdminUser : enregistrement de rôle lu dans admin_users.
// Le rôle "owner" est le seul qui accorde des capacités élevées.
type AdminUser struct {
	AuthID string `json:"auth_id"`
	Role   string `json:"role"`
}

const OwnerRole = "owner"

// Erreurs de validation du profil (mêmes bornes que le formulaire d'origine).
var (
	ErrFullNameRequired         = errors.New("الاسم الكامل مطلوب")
	ErrRegionRequired           = errors.New("المنطقة مطلوبة")
	ErrAddressRequired          = errors.New("العنوان مطلوب")
	ErrInvalidPhone             = errors.New("رقم الهاتف غير صحيح")
	ErrSocialMediaRequired      = errors.New("حساب التواصل الاجتماعي مطلوب")
	ErrSocialMediaTypeRequired  = errors.New("نوع حساب التواصل الاجتماعي مطلوب")
	ErrDeliveryLocationRequired = errors.New("منطقة التوصيل مطلوبة")
	ErrPreferredContactRequired = errors.New("وسيلة التواصل المفضلة مطلوبة")
)

// Validate vérifie les contraintes de champs avant tout effet de bord.
func (p UserProfile) Validate() error {
	if len(strings.TrimSpace(p.FullName)) < 3 {
		return ErrFullNameRequired
	}
	if strings.TrimSpace(p.Region) == "" {
		return ErrRegionRequired
	}
	if len(strings.TrimSpace(p.Address)) < 3 {
		return ErrAddressRequired
	}
	if len(strings.TrimSpace(p.Phone)) < 9 {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(p.SocialMedia) == "" {
		return ErrSocialMediaRequired
	}
	if strings.TrimSpace(p.SocialMediaType) == "" {
		return ErrSocialMediaTypeRequired
	}
	if strings.TrimSpace(p.DeliveryLocation) == "" {
		return ErrDeliveryLocationRequired
	}
	if strings.TrimSpace(p.PreferredContact) == "" {
		return ErrPreferredContactRequired
	}
	return nil
}

// ProfileUpdate : ensemble fermé de champs modifiables.
// Un pointeur nil signifie "champ inchangé".
type ProfileUpdate struct {
	FullName         *string `json:"fullName,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Phone2           *string `json:"phone2,omitempty"`
	Address          *string `json:"address,omitempty"`
	Region           *string `json:"region,omitempty"`
	SocialMediaType  *string `json:"socialMediaType,omitempty"`
	SocialMedia      *string `json:"socialMedia,omitempty"`
	PreferredContact *string `json:"preferredContact,omitempty"`
	DeliveryLocation *string `json:"deliveryLocation,omitempty"`
}

// Apply fusionne les champs renseignés dans le profil.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Phone2 != nil {
		p.Phone2 = *u.Phone2
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Region != nil {
		p.Region = *u.Region
	}
	if u.SocialMediaType != nil {
		p.SocialMediaType = *u.SocialMediaType
	}
	if u.SocialMedia != nil {
		p.SocialMedia = *u.SocialMedia
	}
	if u.PreferredContact != nil {
		p.PreferredContact = *u.PreferredContact
	}
	if u.DeliveryLocation != nil {
		p.DeliveryLocation = *u.DeliveryLocation
	}
}
