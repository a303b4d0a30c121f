package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedBooks is the storefront's whole inventory: ten English titles and
// five Bangla classics. Loaded once at startup, listing order is the
// order below.
func seedBooks() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "The Midnight Library",
			Author:      "Matt Haig",
			Description: "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
			Price:       price("16.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/81tCtHFtOgL._AC_UF1000,1000_QL80_.jpg",
			Categories:  []string{"Fiction", "Fantasy", "Contemporary"},
			Featured:    true,
			InStock:     15,
			Pages:       304,
			PublishYear: 2020,
			ISBN:        "978-0525559474",
			Language:    "English",
		},
		{
			ID:          "2",
			Title:       "Educated",
			Author:      "Tara Westover",
			Description: "An unforgettable memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge University.",
			Price:       price("15.95"),
			CoverImage:  "https://m.media-amazon.com/images/I/41GE5-l2ptL._SY445_SX342_.jpg",
			Categories:  []string{"Memoir", "Biography", "Nonfiction"},
			Featured:    true,
			InStock:     12,
			Pages:       334,
			PublishYear: 2018,
			ISBN:        "978-0399590504",
			Language:    "English",
		},
		{
			ID:          "3",
			Title:       "The Silent Patient",
			Author:      "Alex Michaelides",
			Description: "A woman shoots her husband five times and then never speaks another word. The story follows the criminal psychotherapist who is determined to get her to talk.",
			Price:       price("14.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/91lslnZ-btL._AC_UF1000,1000_QL80_.jpg",
			Categories:  []string{"Thriller", "Mystery", "Psychological"},
			Featured:    true,
			InStock:     20,
			Pages:       336,
			PublishYear: 2019,
			ISBN:        "978-1250301697",
			Language:    "English",
		},
		{
			ID:          "4",
			Title:       "Atomic Habits",
			Author:      "James Clear",
			Description: "An easy and proven way to build good habits and break bad ones. A practical guide to making small changes that lead to big results.",
			Price:       price("18.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/81bGKUa1e0L._AC_UF1000,1000_QL80_.jpg",
			Categories:  []string{"Self-Help", "Psychology", "Nonfiction"},
			InStock:     25,
			Pages:       320,
			PublishYear: 2018,
			ISBN:        "978-0735211292",
			Language:    "English",
		},
		{
			ID:          "5",
			Title:       "Where the Crawdads Sing",
			Author:      "Delia Owens",
			Description: "A novel about a young woman who grows up isolated in the marshes of North Carolina and becomes entangled in a local murder mystery.",
			Price:       price("15.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/81O1oy0y9eL._AC_UF1000,1000_QL80_.jpg",
			Categories:  []string{"Fiction", "Mystery", "Literary"},
			InStock:     18,
			Pages:       384,
			PublishYear: 2018,
			ISBN:        "978-0735219090",
			Language:    "English",
		},
		{
			ID:          "6",
			Title:       "Project Hail Mary",
			Author:      "Andy Weir",
			Description: "A lone astronaut must save the earth from disaster in this gripping tale of survival and interstellar adventure.",
			Price:       price("17.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/51-1T3EnODL._SY445_SX342_.jpg",
			Categories:  []string{"Science Fiction", "Adventure", "Space"},
			Featured:    true,
			InStock:     14,
			Pages:       496,
			PublishYear: 2021,
			ISBN:        "978-0593135204",
			Language:    "English",
		},
		{
			ID:          "7",
			Title:       "The Four Winds",
			Author:      "Kristin Hannah",
			Description: "An epic novel of love, heroism, and hope, set against the backdrop of the Great Depression and Dust Bowl era in America.",
			Price:       price("19.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/514hnJtIdIS._SY445_SX342_.jpg",
			Categories:  []string{"Historical Fiction", "Drama"},
			InStock:     11,
			Pages:       464,
			PublishYear: 2021,
			ISBN:        "978-1250178602",
			Language:    "English",
		},
		{
			ID:          "8",
			Title:       "The Vanishing Half",
			Author:      "Brit Bennett",
			Description: "A stunning novel about twin sisters who choose to live in two very different worlds, one black and one white.",
			Price:       price("16.49"),
			CoverImage:  "https://m.media-amazon.com/images/I/41Ijt1ORg0L._SY445_SX342_.jpg",
			Categories:  []string{"Literary Fiction", "Historical"},
			Featured:    true,
			InStock:     13,
			Pages:       352,
			PublishYear: 2020,
			ISBN:        "978-0525536291",
			Language:    "English",
		},
		{
			ID:          "9",
			Title:       "Klara and the Sun",
			Author:      "Kazuo Ishiguro",
			Description: "From the Nobel Prize-winning author, a story of an Artificial Friend with outstanding observational qualities.",
			Price:       price("17.49"),
			CoverImage:  "https://m.media-amazon.com/images/I/31uIN-rvDrL._SY445_SX342_.jpg",
			Categories:  []string{"Science Fiction", "Literary Fiction"},
			Featured:    true,
			InStock:     10,
			Pages:       320,
			PublishYear: 2021,
			ISBN:        "978-0571364879",
			Language:    "English",
		},
		{
			ID:          "10",
			Title:       "The Lincoln Highway",
			Author:      "Amor Towles",
			Description: "A captivating novel set in 1950s America, filled with glorious mythology, the story of brotherhood, and the bittersweet joys of youth.",
			Price:       price("18.99"),
			CoverImage:  "https://m.media-amazon.com/images/I/415q4XvZ2OL._SY445_SX342_.jpg",
			Categories:  []string{"Historical Fiction", "Adventure"},
			InStock:     8,
			Pages:       592,
			PublishYear: 2021,
			ISBN:        "978-0735222359",
			Language:    "English",
		},
		{
			ID:          "11",
			Title:       "ফেলুদা সমগ্র",
			Author:      "সত্যজিৎ রায়",
			Description: "সত্যজিৎ রায়ের অমর সৃষ্টি - ফেলুদা উপন্যাস সংকলন।",
			Price:       price("22.99"),
			CoverImage:  "https://ds.rokomari.store/rokomari110/ProductNew20190903/260X372/9d3b3bdcc_42889.jpg",
			Categories:  []string{"Bangla", "Mystery", "Adventure"},
			Featured:    true,
			InStock:     20,
			Pages:       850,
			PublishYear: 2010,
			ISBN:        "978-8177564587",
			Language:    "Bangla",
		},
		{
			ID:          "12",
			Title:       "পথের পাঁচালী",
			Author:      "বিভূতিভূষণ বন্দ্যোপাধ্যায়",
			Description: "বাংলা সাহিত্যের অমর কীর্তি - অপুর জীবনকাহিনী।",
			Price:       price("14.99"),
			CoverImage:  "https://ds.rokomari.store/rokomari110/ProductNew20190903/260X372/6886ec7d4_6486.jpg",
			Categories:  []string{"Bangla", "Classic", "Literary Fiction"},
			InStock:     15,
			Pages:       330,
			PublishYear: 1929,
			ISBN:        "978-9351564355",
			Language:    "Bangla",
		},
		{
			ID:          "13",
			Title:       "শেষের কবিতা",
			Author:      "রবীন্দ্রনাথ ঠাকুর",
			Description: "রবীন্দ্রনাথ ঠাকুরের এই উপন্যাসে প্রেম, স্বাধীনতা ও আধুনিকতার সংঘাত দেখা যায়।",
			Price:       price("12.99"),
			CoverImage:  "https://ds.rokomari.store/rokomari110/ProductNew20190903/260X372/Sheser_kobita-Rabindranath_Tagore-8692f-2.jpg",
			Categories:  []string{"Bangla", "Classic", "Poetry", "Romance"},
			Featured:    true,
			InStock:     10,
			Pages:       240,
			PublishYear: 1929,
			ISBN:        "978-8171676934",
			Language:    "Bangla",
		},
		{
			ID:          "14",
			Title:       "চোখের বালি",
			Author:      "রবীন্দ্রনাথ ঠাকুর",
			Description: "বাংলা সাহিত্যের এই অমর উপন্যাসে প্রেম, বিবাহ এবং সামাজিক রীতিনীতির জটিল সম্পর্ক তুলে ধরা হয়েছে।",
			Price:       price("13.49"),
			CoverImage:  "https://ds.rokomari.store/rokomari110/ProductNew20190903/260X372/039f4c8df_5.jpg",
			Categories:  []string{"Bangla", "Classic", "Romance"},
			InStock:     12,
			Pages:       280,
			PublishYear: 1903,
			ISBN:        "978-8171676941",
			Language:    "Bangla",
		},
		{
			ID:          "15",
			Title:       "হিমু সমগ্র",
			Author:      "হুমায়ূন আহমেদ",
			Description: "হুমায়ূন আহমেদের জনপ্রিয় চরিত্র হিমুর গল্প সংকলন।",
			Price:       price("24.99"),
			CoverImage:  "https://ds.rokomari.store/rokomari110/ProductNew20190903/260X372/f7b4fe493_201.jpg",
			Categories:  []string{"Bangla", "Contemporary", "Fiction"},
			Featured:    true,
			InStock:     18,
			Pages:       920,
			PublishYear: 2015,
			ISBN:        "978-9849135791",
			Language:    "Bangla",
		},
	}
}
