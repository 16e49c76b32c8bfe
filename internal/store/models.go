package store

import "time"

type Country struct {
	ID          int64     `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	DialingCode string    `db:"dialing_code" json:"dialing_code"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Operator struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Status    string    `db:"status" json:"status"`
	CountryID int64     `db:"country_id" json:"country_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Publisher struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CompanyName string    `db:"company_name" json:"company_name"`
	Email       string    `db:"email" json:"email"`
	BlockRule   string    `db:"block_rule" json:"block_rule"`
	Status      string    `db:"status" json:"status"`
	Cap         int       `db:"cap" json:"cap"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Advertiser struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	CompanyName    string    `db:"company_name" json:"company_name"`
	Email          string    `db:"email" json:"email"`
	Status         string    `db:"status" json:"status"`
	SendOTPURL     string    `db:"send_otp_url" json:"send_otp_url"`
	VerifyOTPURL   string    `db:"verify_otp_url" json:"verify_otp_url"`
	StatusCheckURL string    `db:"status_check_url" json:"status_check_url"`
	Capping        string    `db:"capping" json:"capping"`
	OperatorID     int64     `db:"operator_id" json:"operator_id"`
	CountryID      int64     `db:"country_id" json:"country_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Campaign binds a publisher to an advertiser within one country and
// operator. RedirectionAdvertiserID is only set when FallbackEnabled is.
type Campaign struct {
	ID                      int64     `db:"id" json:"id"`
	Name                    string    `db:"name" json:"name"`
	PublisherID             int64     `db:"publisher_id" json:"publisher_id"`
	CountryID               int64     `db:"country_id" json:"country_id"`
	OperatorID              int64     `db:"operator_id" json:"operator_id"`
	AdvertiserID            int64     `db:"advertiser_id" json:"advertiser_id"`
	RedirectionAdvertiserID *int64    `db:"redirection_advertiser_id" json:"redirection_advertiser_id"`
	PublisherPrice          float64   `db:"publisher_price" json:"publisher_price"`
	AdvertiserPrice         float64   `db:"advertiser_price" json:"advertiser_price"`
	FallbackEnabled         bool      `db:"fallback_enabled" json:"fallback_enabled"`
	IsLive                  bool      `db:"is_live" json:"is_live"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignSummary is a campaign with the names of every entity it references.
type CampaignSummary struct {
	Campaign
	PublisherName             string  `db:"publisher_name" json:"publisher_name"`
	CountryName               string  `db:"country_name" json:"country_name"`
	OperatorName              string  `db:"operator_name" json:"operator_name"`
	AdvertiserName            string  `db:"advertiser_name" json:"advertiser_name"`
	RedirectionAdvertiserName *string `db:"redirection_advertiser_name" json:"redirection_advertiser_name"`
}

type User struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
