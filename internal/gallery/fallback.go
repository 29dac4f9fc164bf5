package gallery

// fallbackItems is the fixed set shown whenever the backend has nothing
// to offer, so the public page is never empty.
var fallbackItems = []Item{
	{
		ID:          "fallback-1",
		Title:       "Still Life, Soft Decay",
		Description: "A meditation on time and indulgence. Rich textures and fading light capture the quiet luxury of moments that feel full—yet remind us nothing lasts untouched.",
		ImageURL:    "/images/img1.jpg",
	},
	{
		ID:          "fallback-2",
		Title:       "The Geometry of Joy",
		Description: "A visual map of the intricate threads that bind a soul to the world. This piece illustrates how the messy, overlapping lines of our daily experiences eventually converge to form a heart—proving that our identity is not a single point, but a mosaic of everything we choose to love.",
		ImageURL:    "/images/img2.jpg",
	},
	{
		ID:          "fallback-3",
		Title:       "Balanced Guidance",
		Description: "A gentle truth wrapped in simplicity. Following your heart is brave—but carrying your brain with you is wisdom. Growth lives in the balance between the two.",
		ImageURL:    "/images/img3.jpg",
	},
	{
		ID:          "fallback-4",
		Title:       "When Heart and Mind Align",
		Description: "That rare, powerful moment when logic stops fighting emotion. When the brain and the heart finally move in rhythm, decisions stop hurting and start making sense.",
		ImageURL:    "/images/img4.jpg",
	},
	{
		ID:          "fallback-5",
		Title:       "Colorblind to Red Flags",
		Description: "A reminder disguised as humor. Sometimes love paints warning signs as romance, and only later do we realize we ignored red because we wanted to see pink.",
		ImageURL:    "/images/img5.jpg",
	},
	{
		ID:          "fallback-6",
		Title:       "Two Different Worlds",
		Description: "A stark contrast of giving and taking. This piece reflects how empathy builds bridges while narcissism builds mirrors—one heals, the other consumes.",
		ImageURL:    "/images/img6.jpg",
	},
	{
		ID:          "fallback-7",
		Title:       "When Heart and Mind Align",
		Description: "That rare, powerful moment when logic stops fighting emotion. When the brain and the heart finally move in rhythm, decisions stop hurting and start making sense.",
		ImageURL:    "/images/img7.jpg",
	},
	{
		ID:          "fallback-8",
		Title:       "Emotional Literacy",
		Description: "A quiet lesson in self-awareness. The more courage you gather to feel pain, fear, loneliness, and guilt, the clearer they become—no longer monsters, just messages asking to be understood.",
		ImageURL:    "/images/img8.jpg",
	},
}

// Fallback returns a copy of the static set.
func Fallback() []Item {
	out := make([]Item, len(fallbackItems))
	copy(out, fallbackItems)
	return out
}
