package models

// Keys of the singleton config blobs. The value is an arbitrary JSON
// document replaced wholesale on every write.
const (
	ConfigKeyHero   = "hero"
	ConfigKeyAbout  = "about"
	ConfigKeyBanner = "banner"
)

// HeroConfig is the value stored under the "hero" key.
type HeroConfig struct {
	BackgroundImage string `json:"backgroundImage"`
}
