package templating

// TemplateConfig holds the fixed assets and texts shared by every page.
type TemplateConfig struct {
	// LogoAlt is the alt text of the header logo.
	LogoAlt string `json:"logo_alt"`

	// LogoURL is the image shown in the header on every page.
	LogoURL string `json:"logo_url"`

	// HeroImageURL is the large image on the home page.
	HeroImageURL string `json:"hero_image_url"`

	// FontsURL is the stylesheet URL of the web fonts.
	FontsURL string `json:"fonts_url"`

	// IconsURL is the stylesheet URL of the icon library used for member links.
	IconsURL string `json:"icons_url"`

	// StylesheetHref is the site stylesheet. Kiln never generates it.
	StylesheetHref string `json:"stylesheet_href"`

	// ApplyURL is the target of the "Apply Now" button on the members page.
	ApplyURL string `json:"apply_url"`

	// FooterText is printed after the copyright sign.
	FooterText string `json:"footer_text"`
}

// DefaultConfig returns a TemplateConfig pointing at the co-op's public assets.
func DefaultConfig() *TemplateConfig {
	return &TemplateConfig{
		LogoAlt:        "Logo",
		LogoURL:        "https://file-the-coop.tor1.cdn.digitaloceanspaces.com/logo.png",
		HeroImageURL:   "https://images.pexels.com/photos/3094036/pexels-photo-3094036.jpeg",
		FontsURL:       "https://fonts.googleapis.com/css2?family=Quicksand&family=Solway:wght@700&display=swap",
		IconsURL:       "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.0/css/all.min.css",
		StylesheetHref: "styles.css",
		ApplyURL:       "#",
		FooterText:     "2025 Chicago Clay Co-operative",
	}
}
