package knowledge

// Entity is a rights-sensitive name with the spellings that identify it in
// scene text. Display names are the transliterated form.
type Entity struct {
	Name    string
	Aliases []string
}

func celebrityRegistry() []Entity {
	return []Entity{
		{Name: "Amr Diab", Aliases: []string{"عمرو دياب", "amr diab"}},
		{Name: "Tamer Hosny", Aliases: []string{"تامر حسني", "تامر حسن", "tamer hosny"}},
		{Name: "Mohamed Mounir", Aliases: []string{"محمد منير", "mohamed mounir"}},
		{Name: "Angham", Aliases: []string{"أنغام", "angham"}},
		{Name: "Sherine", Aliases: []string{"شيرين", "sherine"}},
		{Name: "Amr Mostafa", Aliases: []string{"عمرو مصطفى", "amr mostafa"}},
		{Name: "Hamid El Shaeri", Aliases: []string{"حميد الشاعري", "hamid el shaeri"}},
		{Name: "Osama Anwar Okasha", Aliases: []string{"أسامة أنور عكاشة", "عكاشة", "okasha"}},
		{Name: "Youssef Chahine", Aliases: []string{"يوسف شاهين", "youssef chahine"}},
	}
}

func brandRegistry() []Entity {
	return []Entity{
		{Name: "iPhone", Aliases: []string{"آيفون", "iphone"}},
		{Name: "Samsung", Aliases: []string{"سامسونج", "samsung"}},
		{Name: "Mercedes", Aliases: []string{"مرسيدس", "mercedes"}},
		{Name: "BMW", Aliases: []string{"بي إم دبليو", "bmw"}},
		{Name: "Facebook", Aliases: []string{"فيسبوك", "facebook"}},
		{Name: "WhatsApp", Aliases: []string{"واتساب", "whatsapp"}},
		{Name: "Twitter", Aliases: []string{"تويتر", "twitter"}},
		{Name: "Instagram", Aliases: []string{"إنستجرام", "instagram"}},
	}
}

func songRegistry() []Entity {
	return []Entity{
		{Name: "Baadt Leih", Aliases: []string{"بعدت ليه", "baadt leih"}},
		{Name: "Tamally Maak", Aliases: []string{"تملي معاك", "tamally maak"}},
		{Name: "Alby Ekhtarak", Aliases: []string{"قلبي اختارك", "alby ekhtarak"}},
		{Name: "Maak Alby", Aliases: []string{"معاك قلبي", "maak alby"}},
		{Name: "Nour El Ein", Aliases: []string{"نور العين", "nour el ein"}},
	}
}

// Celebrities returns the celebrity registry.
func (b *Base) Celebrities() []Entity { return b.celebrities }

// Brands returns the brand registry.
func (b *Base) Brands() []Entity { return b.brands }

// Songs returns the copyrighted song registry.
func (b *Base) Songs() []Entity { return b.songs }
