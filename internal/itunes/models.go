package itunes

import "strconv"

// App is one catalog entry from the search or lookup endpoint. Fields are
// resolved from the wire format once at decode time; absent strings stay
// empty and absent numerics stay zero, so callers never touch raw JSON.
type App struct {
	ID          int64   `json:"trackId"`
	Name        string  `json:"trackName"`
	Developer   string  `json:"artistName"`
	Genre       string  `json:"primaryGenreName"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"averageUserRating"`
	RatingCount int64   `json:"userRatingCount"`
	Version     string  `json:"version"`
	SizeBytes   int64   `json:"sizeBytes"`
	MinimumOS   string  `json:"minimumOsVersion"`
	StoreURL    string  `json:"trackViewUrl"`
	UpdatedAt   string  `json:"currentVersionReleaseDate"`
	Description string  `json:"description"`
}

// wireApp mirrors the endpoint's quirks: fileSizeBytes arrives as a string.
type wireApp struct {
	TrackID       int64   `json:"trackId"`
	TrackName     string  `json:"trackName"`
	ArtistName    string  `json:"artistName"`
	Genre         string  `json:"primaryGenreName"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"averageUserRating"`
	RatingCount   int64   `json:"userRatingCount"`
	Version       string  `json:"version"`
	FileSizeBytes string  `json:"fileSizeBytes"`
	MinimumOS     string  `json:"minimumOsVersion"`
	TrackViewURL  string  `json:"trackViewUrl"`
	ReleaseDate   string  `json:"currentVersionReleaseDate"`
	Description   string  `json:"description"`
}

func (w wireApp) app() App {
	size, err := strconv.ParseInt(w.FileSizeBytes, 10, 64)
	if err != nil || size < 0 {
		size = 0
	}
	return App{
		ID:          w.TrackID,
		Name:        w.TrackName,
		Developer:   w.ArtistName,
		Genre:       w.Genre,
		Price:       w.Price,
		Rating:      w.Rating,
		RatingCount: w.RatingCount,
		Version:     w.Version,
		SizeBytes:   size,
		MinimumOS:   w.MinimumOS,
		StoreURL:    w.TrackViewURL,
		UpdatedAt:   w.ReleaseDate,
		Description: w.Description,
	}
}

// Free reports whether the app costs nothing.
func (a App) Free() bool {
	return a.Price == 0
}

// PriceLabel renders the price the way the store listing shows it.
func (a App) PriceLabel() string {
	if a.Free() {
		return "Free"
	}
	return "$" + strconv.FormatFloat(a.Price, 'f', 2, 64)
}
