package catalog

import "alattar_back_end/internal/models"

// Catalogue statique du magasin, figé au build.
// Les ids sont stables : ils servent de clé dans les paniers sérialisés.
var products = []models.Product{
	// فئة: الأجبان و الألبان
	{
		ID:          1,
		Name:        "واحد كيلو جبنة نعاج",
		Description: "جبنة نعاج طازجة وأصلية، محضرة بطريقة تقليدية",
		Price:       25,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1452195100486-9cc805987862?q=80&w=2069&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},
	{
		ID:          2,
		Name:        "لبنة مع زيت زيتون",
		Description: "لبنة طازجة مع زيت زيتون فلسطيني أصلي",
		Price:       30,
		Weight:      "850 غرام",
		Image:       "https://images.unsplash.com/photo-1559561853-08451507cbe7?q=80&w=2034&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},
	{
		ID:          3,
		Name:        "سمن بلدي",
		Description: "سمن بلدي أصلي، محضر بطريقة تقليدية",
		Price:       30,
		Weight:      "نصف كيلو",
		Image:       "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?q=80&w=1974&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},
	{
		ID:          4,
		Name:        "كيلو جميد بلدي",
		Description: "جميد بلدي أصلي، مصنوع من حليب الأغنام",
		Price:       50,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1624979641604-1e7b013e1563?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},
	{
		ID:          5,
		Name:        "سمن بلدي",
		Description: "سمن بلدي أصلي، عبوة صغيرة مناسبة للتجربة",
		Price:       25,
		Weight:      "20 غرام",
		Image:       "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?q=80&w=1974&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},
	{
		ID:          6,
		Name:        "سمنة البقرة الحلوب",
		Description: "سمنة البقرة الحلوب الأصلية، غنية بالفيتامينات والعناصر المفيدة",
		Price:       35,
		Weight:      "نصف كيلو",
		Image:       "https://images.unsplash.com/photo-1628268909376-e8c9ed996fb0?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الأجبان و الألبان",
	},

	// فئة: المكدوس
	{
		ID:          7,
		Name:        "كيلو مكدوس بالزيت والجوز",
		Description: "مكدوس باذنجان محشو بالجوز والفلفل والثوم، محفوظ بزيت زيتون فلسطيني أصلي",
		Price:       25,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1601117596595-ef03ac66df7f?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "المكدوس",
	},

	// فئة: العسل
	{
		ID:          8,
		Name:        "كيلو عسل سدر أصلي",
		Description: "عسل سدر طبيعي 100%، مذاق رائع وفوائد صحية عديدة",
		Price:       100,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1587049352851-8d4e89133924?q=80&w=2080&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "العسل",
	},

	// فئة: بهارات ومكسرات
	{
		ID:          9,
		Name:        "كيلو لوز مبشور (رباع أو نصاص)",
		Description: "لوز مبشور طازج، يمكن اختيار الحجم المناسب (رباع أو نصاص)",
		Price:       50,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1614398342600-d4df717638cc?q=80&w=2574&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "بهارات ومكسرات",
	},
	{
		ID:          10,
		Name:        "شوربة بنكهة الدجاج",
		Description: "شوربة لذيذة بنكهة الدجاج، سهلة التحضير ومناسبة للعائلة",
		Price:       100,
		Weight:      "800 غرام",
		Image:       "https://images.unsplash.com/photo-1584949602334-4e99f98286a9?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "بهارات ومكسرات",
	},
	{
		ID:          11,
		Name:        "طحين اللوز",
		Description: "طحين لوز طازج، مناسب للحلويات والأطباق الخاصة",
		Price:       25,
		Weight:      "نصف كيلو",
		Image:       "https://images.unsplash.com/photo-1621955964441-c173e01c135b?q=80&w=1965&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "بهارات ومكسرات",
	},

	// فئة: المخللات
	{
		ID:          12,
		Name:        "مخلل خيار بيبي",
		Description: "مخلل خيار بيبي لذيذ، محضر بطريقة تقليدية",
		Price:       15,
		Weight:      "1 لتر",
		Image:       "https://images.unsplash.com/photo-1593488297625-334526856181?q=80&w=2071&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "المخللات",
	},
	{
		ID:          13,
		Name:        "مخلل فقوس بلدي",
		Description: "مخلل فقوس بلدي أصلي، محضر بطريقة تقليدية",
		Price:       15,
		Weight:      "1 لتر",
		Image:       "https://images.unsplash.com/photo-1521473585104-7e5f0512afeb?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "المخللات",
	},

	// فئة: الشطة
	{
		ID:          14,
		Name:        "هالبينو بزيت الزيتون",
		Description: "فلفل هالبينو حار محفوظ بزيت الزيتون الفلسطيني الأصلي",
		Price:       20,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1642728665846-a4efd4919099?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الشطة",
	},
	{
		ID:          15,
		Name:        "تغميسة العطار (سلطة فلفل)",
		Description: "سلطة فلفل خاصة، وصفة العطار السرية اللذيذة",
		Price:       20,
		Weight:      "1 كجم",
		Image:       "https://images.unsplash.com/photo-1670421825030-8f8fd79db279?q=80&w=2071&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الشطة",
	},
	{
		ID:          16,
		Name:        "شطة حمرة حارة",
		Description: "شطة حمراء حارة، مناسبة للأطباق المتنوعة",
		Price:       15,
		Weight:      "1 لتر",
		Image:       "https://images.unsplash.com/photo-1635270256858-2854398348d9?q=80&w=2048&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الشطة",
	},
	{
		ID:          17,
		Name:        "شطة خضرة حارة",
		Description: "شطة خضراء حارة، نكهة مميزة ومذاق رائع",
		Price:       15,
		Weight:      "1 لتر",
		Image:       "https://images.unsplash.com/photo-1635619061839-a615e3d9ef76?q=80&w=2071&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الشطة",
	},
	{
		ID:          18,
		Name:        "دبس فلفل حار",
		Description: "دبس فلفل حار مركز، يضيف نكهة مميزة للأطباق",
		Price:       20,
		Weight:      "نصف كيلو",
		Image:       "https://images.unsplash.com/photo-1607919947372-fe395f92951e?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3",
		Category:    "الشطة",
	},
}
