// Package breeds holds the static animal category and breed reference
// data served by the categories endpoint. Local and foreign breeds are
// listed together.
package breeds

type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	NameEN string   `json:"name_en"`
	Icon   string   `json:"icon"`
	Breeds []string `json:"breeds"`
}

// Categories is ordered the way the mobile client displays them.
var Categories = []Category{
	{
		ID:     "cattle",
		Name:   "Sığır",
		NameEN: "Cattle",
		Icon:   "🐄",
		Breeds: []string{
			"Yerli Kara (Anadolu Kara)",
			"Güney Anadolu Kırmızısı (Çukurova Kırmızısı)",
			"Doğu Anadolu Kırmızısı (DAK)",
			"Boz Irk",
			"Zavot",
			"Yalova Esmeri",
			"Yerli Güney Sarısı",
			"Holstein (Siyah-Alaca)",
			"Jersey",
			"Montbeliarde",
			"Simmental (Fleckvieh)",
			"Brown Swiss (Esmer)",
			"Angus (Aberdeen Angus)",
			"Hereford",
			"Charolais",
			"Limousin",
			"Shorthorn",
			"Belgian Blue (Belçika Mavisi)",
			"Ayrshire",
			"Guernsey",
			"Galloway",
			"Highland",
		},
	},
	{
		ID:     "sheep",
		Name:   "Koyun",
		NameEN: "Sheep",
		Icon:   "🐑",
		Breeds: []string{
			"Akkaraman",
			"Morkaraman",
			"İvesi (Awassi)",
			"Karayaka",
			"Dağlıç",
			"Kıvırcık",
			"Sakız",
			"Hemşin",
			"Gökçeada",
			"Karaman",
			"Malya",
			"Çine Çaparı",
			"Norduz",
			"Herik",
			"Merinos",
			"Suffolk",
			"Hampshire Down",
			"Texel",
			"Dorset",
			"East Friesian",
			"Rambouillet",
			"Border Leicester",
			"Cheviot",
			"Dorper",
		},
	},
	{
		ID:     "goat",
		Name:   "Keçi",
		NameEN: "Goat",
		Icon:   "🐐",
		Breeds: []string{
			"Kilis Keçisi",
			"Honamlı Keçisi",
			"Ankara Tiftik Keçisi",
			"Halep Keçisi",
			"Gürcü Keçisi",
			"Çepni Keçisi",
			"Saanen",
			"Alpine",
			"Toggenburg",
			"Anglo-Nubian",
			"Boer",
			"LaMancha",
			"Oberhasli",
			"Murciana-Granadina",
		},
	},
	{
		ID:     "buffalo",
		Name:   "Manda",
		NameEN: "Buffalo",
		Icon:   "🐃",
		Breeds: []string{
			"Anadolu Mandası",
			"Karadeniz Mandası",
			"Murrah",
			"Nili-Ravi",
			"Jafarabadi",
			"Surti",
			"Egyptian Buffalo",
		},
	},
	{
		ID:     "poultry",
		Name:   "Kümes Hayvanları",
		NameEN: "Poultry",
		Icon:   "🐓",
		Breeds: []string{
			"Denizli Tavuğu",
			"Gerze Tavuğu",
			"Sultan Tavuğu",
			"Ligorin",
			"Lohmann Brown",
			"Leghorn",
			"Plymouth Rock",
			"Rhode Island Red",
			"Sussex",
			"Wyandotte",
			"Orpington",
			"Australorp",
			"Cornish",
			"Brahma",
			"Cochin",
			"Marans",
		},
	},
	{
		ID:     "horse",
		Name:   "At",
		NameEN: "Horse",
		Icon:   "🐎",
		Breeds: []string{
			"Anadolu Atı",
			"Karacabey Atı",
			"Canik Atı",
			"Midilli",
			"Arap Atı",
			"İngiliz Atı (Thoroughbred)",
			"Mustang",
			"Morgan",
			"Quarter Horse",
			"Andalusian",
			"Appaloosa",
			"Friesian",
			"Clydesdale",
			"Percheron",
			"Shire Horse",
		},
	},
}
