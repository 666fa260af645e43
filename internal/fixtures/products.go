// Package fixtures holds the demo-mode seed dataset. The data backs the
// in-memory repositories when no database is configured and doubles as the
// read fallback when a configured database becomes unreachable.
package fixtures

import "badmintonpro/internal/models"

// Products is the canonical demo catalog, keyed by a single id scheme.
var Products = []models.Product{
	{
		ID:            "1",
		Name:          "Astrox 99 Pro",
		NameCN:        "天斧99 Pro",
		Description:   "Ultimate power racket for aggressive players. Designed for explosive smashes and precise control.",
		DescriptionCN: "为进攻型选手打造的极致力量球拍。专为爆发式扣杀和精准控制而设计。",
		Brand:         "Yonex",
		Price:         219.00,
		OriginalPrice: 245.00,
		Rating:        4.8,
		Reviews:       120,
		Image:         "https://images.badmintonpro.shop/products/astrox-99-pro.jpg",
		Category:      models.CategoryRackets,
		Tags:          []string{"New", "Sale"},
		Stock:         12,
		SKU:           "YNX-AST99",
		Specs:         &models.ProductSpecs{Weight: "4U", Balance: "Head Heavy", Flex: "Stiff", Grip: "G5"},
		IsNew:         true,
		SalePercentage: 15,
	},
	{
		ID:            "2",
		Name:          "Thruster F Claw",
		NameCN:        "突击鬼爪",
		Description:   "Power-focused racket with exceptional head weight for devastating attacks.",
		DescriptionCN: "重头攻击型球拍，头重设计提供毁灭性的攻击力。",
		Brand:         "Victor",
		Price:         185.00,
		OriginalPrice: 218.00,
		Rating:        4.7,
		Reviews:       85,
		Image:         "https://images.badmintonpro.shop/products/thruster-f-claw.jpg",
		Category:      models.CategoryRackets,
		Stock:         8,
		Specs:         &models.ProductSpecs{Weight: "3U", Balance: "Head Heavy"},
		SalePercentage: 15,
	},
	{
		ID:            "3",
		Name:          "Power Cushion 65 Z",
		NameCN:        "动力垫65Z",
		Description:   "Professional badminton shoes with superior cushioning and stability.",
		DescriptionCN: "专业羽毛球鞋，卓越的缓震性能与稳定性。",
		Brand:         "Yonex",
		Price:         145.00,
		Rating:        4.5,
		Reviews:       128,
		Image:         "https://images.badmintonpro.shop/products/power-cushion-65z.jpg",
		Category:      models.CategoryFootwear,
		Stock:         25,
		SKU:           "YNX-PC65Z",
	},
	{
		ID:            "4",
		Name:          "Aerosensa 50 (Dozen)",
		NameCN:        "AS-50羽毛球 (一打)",
		Description:   "Tournament-grade feather shuttlecocks with excellent durability and flight.",
		DescriptionCN: "比赛级羽毛球，优异的耐用性和飞行稳定性。",
		Brand:         "Yonex",
		Price:         35.00,
		Rating:        5.0,
		Reviews:       85,
		Image:         "https://images.badmintonpro.shop/products/aerosensa-50.jpg",
		Category:      models.CategoryAccessories,
		Stock:         150,
		SKU:           "YNX-AS50",
	},
	{
		ID:            "5",
		Name:          "Aeronaut 9000 Combat",
		NameCN:        "风刃9000 战斗版",
		Description:   "All-round racket with balanced performance for versatile play styles.",
		DescriptionCN: "全面型球拍，平衡的性能适合多种打法。",
		Brand:         "Li-Ning",
		Price:         230.00,
		Rating:        4.6,
		Reviews:       42,
		Image:         "https://images.badmintonpro.shop/products/aeronaut-9000-combat.jpg",
		Category:      models.CategoryRackets,
		Stock:         5,
		Specs:         &models.ProductSpecs{Weight: "3U", Balance: "Head Heavy"},
	},
	{
		ID:            "6",
		Name:          "Nanoflare 800 LT",
		NameCN:        "疾光800 LT",
		Description:   "Lightweight speed racket for quick reactions and fast swings.",
		DescriptionCN: "轻量速度型球拍，快速反应和极速挥拍。",
		Brand:         "Yonex",
		Price:         195.00,
		Rating:        4.7,
		Reviews:       65,
		Image:         "https://images.badmintonpro.shop/products/nanoflare-800-lt.jpg",
		Category:      models.CategoryRackets,
		Stock:         10,
		Specs:         &models.ProductSpecs{Weight: "5U", Balance: "Head Light"},
	},
	{
		ID:          "7",
		Name:        "Arcsaber 11 Pro",
		NameCN:      "弓剑11 Pro",
		Description: "Precision control racket with excellent repulsion and accuracy.",
		DescriptionCN: "精准控制型球拍，出色的反弹力和准确性。",
		Brand:       "Yonex",
		Price:       205.00,
		Rating:      4.9,
		Reviews:     200,
		Image:       "https://images.badmintonpro.shop/products/arcsaber-11-pro.jpg",
		Category:    models.CategoryRackets,
		Tags:        []string{"Best Seller"},
		Stock:       18,
		Specs:       &models.ProductSpecs{Weight: "3U", Balance: "Even Balance"},
	},
	{
		ID:          "8",
		Name:        "Auraspeed 90K Metallic",
		NameCN:      "亮剑90K 金属版",
		Description: "Speed racket with a metallic finish, built for rapid exchanges.",
		DescriptionCN: "金属质感速度型球拍，为快速平抽挡而生。",
		Brand:       "Victor",
		Price:       175.00,
		Rating:      4.6,
		Reviews:     54,
		Image:       "https://images.badmintonpro.shop/products/auraspeed-90k.jpg",
		Category:    models.CategoryRackets,
		Stock:       14,
		Specs:       &models.ProductSpecs{Weight: "3U", Balance: "Head Light"},
	},
	{
		ID:          "9",
		Name:        "Li-Ning Ranger VI",
		NameCN:      "李宁突击6代",
		Description: "Court shoes with strong ankle support and a grippy outsole.",
		DescriptionCN: "脚踝支撑出色的羽毛球鞋，抓地力强。",
		Brand:       "Li-Ning",
		Price:       145.00,
		Rating:      4.5,
		Reviews:     38,
		Image:       "https://images.badmintonpro.shop/products/ranger-vi.jpg",
		Category:    models.CategoryFootwear,
		Stock:       20,
	},
	{
		ID:          "10",
		Name:        "Li-Ning Team Jersey",
		NameCN:      "李宁团队球衣",
		Description: "Breathable team wear for matches and training.",
		DescriptionCN: "透气团队球衣，适合比赛和训练。",
		Brand:       "Li-Ning",
		Price:       45.00,
		Rating:      4.2,
		Reviews:     26,
		Image:       "https://images.badmintonpro.shop/products/team-jersey.jpg",
		Category:    models.CategoryApparel,
		Stock:       60,
	},
	{
		ID:          "11",
		Name:        "Pro Grip Tape (Blue)",
		NameCN:      "专业手胶 (蓝色)",
		Description: "Sweat-absorbing overgrip that outlasts the usual club tapes.",
		DescriptionCN: "吸汗耐用的缠绕手胶。",
		Brand:       "BadmintonPro",
		Price:       8.50,
		Rating:      4.8,
		Reviews:     310,
		Image:       "https://images.badmintonpro.shop/products/pro-grip-blue.jpg",
		Category:    models.CategoryAccessories,
		Stock:       400,
		SKU:         "BP-GRIP-BL",
	},
	{
		ID:          "12",
		Name:        "Victor P9200 Court Shoes",
		NameCN:      "威克多P9200",
		Description: "Lightweight court shoes with a responsive cushioning system.",
		DescriptionCN: "轻量羽毛球鞋，缓震系统反馈出色。",
		Brand:       "Victor",
		Price:       140.00,
		Rating:      4.6,
		Reviews:     47,
		Image:       "https://images.badmintonpro.shop/products/p9200.jpg",
		Category:    models.CategoryFootwear,
		Stock:       16,
	},
	{
		ID:          "13",
		Name:        "Pro Tournament Tee",
		NameCN:      "专业比赛T恤",
		Description: "Quick-dry match tee with cooling fabric technology.",
		DescriptionCN: "速干比赛T恤，凉感面料。",
		Brand:       "BadmintonPro",
		Price:       29.00,
		Rating:      4.1,
		Reviews:     12,
		Image:       "https://images.badmintonpro.shop/products/tournament-tee.jpg",
		Category:    models.CategoryApparel,
		Stock:       45,
	},
}

// ProductByID returns the fixture product with the given id, or nil.
func ProductByID(id string) *models.Product {
	for i := range Products {
		if Products[i].ID == id {
			p := Products[i]
			return &p
		}
	}
	return nil
}
