package people

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultURL   = "https://people.googleapis.com"
	mePath       = "/v1/people/me"
	personFields = "birthdays,names,genders"

	UnknownName  = "Unknown"
	NotAvailable = "Not available"
)

var (
	ErrUnauthorized = fmt.Errorf("people api rejected the access token")
	errEmptyToken   = fmt.Errorf("empty access token")
)

var log = logrus.WithField("prefix", "people")

// Profile is the subset of a Google profile shown to the user
type Profile struct {
	ResourceName string `json:"-"`
	Name         string `json:"name"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
}

type Client interface {
	Me(ctx context.Context, accessToken string) (*Profile, error)
}

type date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type person struct {
	ResourceName string `json:"resourceName"`
	Names        []struct {
		DisplayName string `json:"displayName"`
	} `json:"names"`
	Birthdays []struct {
		Date date `json:"date"`
	} `json:"birthdays"`
	Genders []struct {
		Value string `json:"value"`
	} `json:"genders"`
}

type client struct {
	http *resty.Client
	now  func() time.Time
}

// ageAt returns the completed years between the birthday and now
func ageAt(birthday date, now time.Time) int {
	age := now.Year() - birthday.Year
	month := time.Month(birthday.Month)
	if now.Month() < month || (now.Month() == month && now.Day() < birthday.Day) {
		age--
	}
	return age
}

func (c *client) profile(p person) *Profile {
	profile := &Profile{
		ResourceName: p.ResourceName,
		Name:         UnknownName,
		Age:          NotAvailable,
		Gender:       NotAvailable,
	}

	if len(p.Names) > 0 && p.Names[0].DisplayName != "" {
		profile.Name = p.Names[0].DisplayName
	}

	if len(p.Birthdays) > 0 && p.Birthdays[0].Date.Year > 0 {
		profile.Age = strconv.Itoa(ageAt(p.Birthdays[0].Date, c.now().UTC()))
	}

	if len(p.Genders) > 0 && p.Genders[0].Value != "" {
		profile.Gender = p.Genders[0].Value
	}

	return profile
}

func (c *client) Me(ctx context.Context, accessToken string) (*Profile, error) {
	if accessToken == "" {
		return nil, errEmptyToken
	}

	var p person
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("personFields", personFields).
		SetResult(&p).
		Get(mePath)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		log.WithField("status", resp.StatusCode()).WithField("body", resp.String()).Error("people api request failed")
		return nil, fmt.Errorf("people api request failed with status %d", resp.StatusCode())
	}

	if p.ResourceName == "" {
		return nil, fmt.Errorf("people api returned no resource name")
	}

	return c.profile(p), nil
}

func New(url string, timeout time.Duration) Client {
	return NewWithClock(url, timeout, time.Now)
}

// NewWithClock returns a client computing ages against the given clock
func NewWithClock(url string, timeout time.Duration, now func() time.Time) Client {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &client{
		http: resty.New().
			SetBaseURL(u).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		now: now,
	}
}
