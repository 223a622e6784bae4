package seed

// CategorySeed and ProductSeed hold the built-in Portuguese catalog,
// priced in meticais. Products reference categories by name.

type CategorySeed struct {
	Name        string
	Description string
}

type ProductSeed struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}

// DefaultStock is assigned to every seeded product.
const DefaultStock = 100

var Categories = []CategorySeed{
	{Name: "Eletrônicos", Description: "Smartphones, laptops, tablets e acessórios"},
	{Name: "Roupas Masculinas", Description: "Camisas, calças, tênis e acessórios masculinos"},
	{Name: "Roupas Femininas", Description: "Vestidos, blusas, sapatos e acessórios femininos"},
	{Name: "Casa e Jardim", Description: "Móveis, eletrodomésticos e decoração"},
	{Name: "Esportes", Description: "Equipamentos esportivos e roupas de academia"},
	{Name: "Joias", Description: "Anéis, colares, relógios e acessórios de luxo"},
	{Name: "Livros", Description: "Livros de literatura, ficção e não-ficção"},
}

var Products = []ProductSeed{
	// Eletrônicos
	{Name: "Smartphone Samsung Galaxy A54", Description: "Smartphone com câmera de 50MP, tela de 6.4 polegadas e bateria de 5000mAh", Price: 25000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop"},
	{Name: "iPhone 15 Pro", Description: "Smartphone Apple com chip A17 Pro, câmera de 48MP e tela Super Retina XDR", Price: 45000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300&h=300&fit=crop"},
	{Name: "Laptop Dell Inspiron 15", Description: "Notebook com processador Intel i5, 8GB RAM, 256GB SSD e tela de 15.6 polegadas", Price: 35000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=300&fit=crop"},
	{Name: "Tablet iPad Air", Description: "Tablet Apple com chip M1, tela Liquid Retina de 10.9 polegadas e suporte ao Apple Pencil", Price: 28000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=300&h=300&fit=crop"},
	{Name: "Smartwatch Apple Watch", Description: "Relógio inteligente com GPS, monitor de saúde e resistência à água", Price: 12000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=300&h=300&fit=crop"},
	{Name: "Fones de Ouvido Sony WH-1000XM4", Description: "Fones sem fio com cancelamento de ruído e bateria de 30 horas", Price: 8000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop"},
	{Name: "Câmera Canon EOS R6", Description: "Câmera mirrorless profissional com sensor full-frame de 20MP", Price: 55000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1502920917122-1aa500764cbd?w=300&h=300&fit=crop"},
	{Name: "TV Samsung 55 polegadas", Description: "Smart TV 4K com HDR, sistema Tizen e conexão Wi-Fi", Price: 32000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=300&h=300&fit=crop"},
	{Name: "PlayStation 5", Description: "Console de videogame com SSD ultra-rápido e ray tracing", Price: 40000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=300&h=300&fit=crop"},
	{Name: "Xbox Series X", Description: "Console Microsoft com processador AMD Zen 2 e 1TB de armazenamento", Price: 38000, Category: "Eletrônicos", ImageURL: "https://images.unsplash.com/photo-1621259182978-fbf93132d53d?w=300&h=300&fit=crop"},

	// Roupas Masculinas
	{Name: "Camisa Polo Lacoste", Description: "Camisa polo de algodão penteado com logo bordado", Price: 1200, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=300&fit=crop"},
	{Name: "Calça Jeans Levis 501", Description: "Calça jeans clássica em denim azul com corte regular", Price: 1800, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=300&h=300&fit=crop"},
	{Name: "Tênis Nike Air Max", Description: "Tênis esportivo com tecnologia Air Max e solado em borracha", Price: 2500, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=300&fit=crop"},
	{Name: "Jaqueta de Couro", Description: "Jaqueta de couro legítimo com forro interno e zíper", Price: 4500, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=300&h=300&fit=crop"},
	{Name: "Terno Hugo Boss", Description: "Terno de lã com corte slim, paletó e calça", Price: 8000, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop"},
	{Name: "Relógio Rolex Submariner", Description: "Relógio de mergulho com caixa de aço inoxidável e resistência à água", Price: 25000, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop"},
	{Name: "Cinto de Couro", Description: "Cinto de couro legítimo com fivela de metal", Price: 800, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop"},
	{Name: "Óculos de Sol Ray-Ban", Description: "Óculos de sol com lentes polarizadas e armação de acetato", Price: 1500, Category: "Roupas Masculinas", ImageURL: "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=300&h=300&fit=crop"},

	// Roupas Femininas
	{Name: "Vestido de Festa", Description: "Vestido elegante para ocasiões especiais em tecido premium", Price: 2200, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=300&h=300&fit=crop"},
	{Name: "Blusa de Seda", Description: "Blusa de seda natural com corte clássico e botões de madrepérola", Price: 1800, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=300&h=300&fit=crop"},
	{Name: "Calça Social Feminina", Description: "Calça social em tecido stretch com corte moderno", Price: 1500, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1581044777550-4cfa60707c03?w=300&h=300&fit=crop"},
	{Name: "Sapato de Salto Alto", Description: "Sapato de salto alto em couro com salto de 8cm", Price: 2000, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=300&h=300&fit=crop"},
	{Name: "Bolsa de Couro", Description: "Bolsa de couro legítimo com alça ajustável e compartimentos internos", Price: 2800, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop"},
	{Name: "Biquíni de Praia", Description: "Conjunto de biquíni em lycra com estampa tropical", Price: 1200, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Casaco de Inverno", Description: "Casaco quente para inverno com capuz e bolsos", Price: 3500, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=300&h=300&fit=crop"},
	{Name: "Pulseira de Prata", Description: "Pulseira de prata 925 com pingente de coração", Price: 800, Category: "Roupas Femininas", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},

	// Casa e Jardim
	{Name: "Sofá 3 Lugares", Description: "Sofá confortável em tecido cinza com almofadas decorativas", Price: 12000, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop"},
	{Name: "Mesa de Jantar", Description: "Mesa de jantar para 6 pessoas em madeira maciça", Price: 8000, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop"},
	{Name: "Cama King Size", Description: "Cama king size com cabeceira estofada e colchão de molas", Price: 15000, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=300&fit=crop"},
	{Name: "Geladeira Brastemp", Description: "Geladeira frost-free com 300L de capacidade", Price: 18000, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=300&h=300&fit=crop"},
	{Name: "Fogão 4 Bocas", Description: "Fogão a gás com 4 bocas e forno elétrico", Price: 2500, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=300&h=300&fit=crop"},
	{Name: "Micro-ondas 30L", Description: "Micro-ondas com 30 litros de capacidade e 10 níveis de potência", Price: 1800, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=300&h=300&fit=crop"},
	{Name: "Liquidificador", Description: "Liquidificador com 1000W de potência e jarra de vidro", Price: 800, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=300&h=300&fit=crop"},
	{Name: "Aspirador de Pó", Description: "Aspirador de pó vertical com filtro HEPA", Price: 1200, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=300&h=300&fit=crop"},
	{Name: "Vaso de Planta", Description: "Vaso de cerâmica para plantas com dreno", Price: 300, Category: "Casa e Jardim", ImageURL: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=300&h=300&fit=crop"},

	// Esportes
	{Name: "Bicicleta Mountain Bike", Description: "Bicicleta para trilhas com 21 marchas e freios a disco", Price: 12000, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=300&h=300&fit=crop"},
	{Name: "Tênis de Corrida Nike", Description: "Tênis esportivo com tecnologia Air Max para corrida", Price: 2800, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=300&fit=crop"},
	{Name: "Roupa de Academia", Description: "Conjunto de treino em dry-fit com short e camiseta", Price: 1200, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Halteres 20kg", Description: "Par de halteres ajustáveis de 20kg para musculação", Price: 2500, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Bola de Futebol", Description: "Bola de futebol oficial com tecnologia Nike", Price: 800, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Raquete de Tênis", Description: "Raquete de tênis profissional com cordas de alta qualidade", Price: 1800, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Óculos de Natação", Description: "Óculos de natação com lentes anti-embaçamento", Price: 400, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Corda de Pular", Description: "Corda de pular ajustável com contador de pulos", Price: 200, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},
	{Name: "Esteira Elétrica", Description: "Esteira elétrica com inclinação e programas de treino", Price: 15000, Category: "Esportes", ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop"},

	// Joias
	{Name: "Anel de Ouro 18k", Description: "Anel de ouro 18 quilates com design clássico", Price: 5000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Colar de Diamante", Description: "Colar com pingente de diamante em ouro branco", Price: 25000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Brinco de Pérola", Description: "Brinco de pérola natural com fecho de ouro", Price: 3500, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Pulseira de Ouro", Description: "Pulseira de ouro 18k com elos entrelaçados", Price: 8000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Relógio de Ouro", Description: "Relógio de pulso em ouro com mostrador analógico", Price: 18000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop"},
	{Name: "Aliança de Casamento", Description: "Aliança de ouro 18k para casamento", Price: 4500, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Broche de Diamante", Description: "Broche decorativo com diamantes e ouro", Price: 12000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},
	{Name: "Pingente de Esmeralda", Description: "Pingente de esmeralda natural em ouro", Price: 15000, Category: "Joias", ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop"},

	// Livros
	{Name: "Livro: A Arte da Guerra", Description: "Clássico de Sun Tzu sobre estratégia militar", Price: 800, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: O Pequeno Príncipe", Description: "Obra clássica de Antoine de Saint-Exupéry", Price: 600, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: Dom Casmurro", Description: "Romance de Machado de Assis", Price: 500, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: 1984", Description: "Distopia clássica de George Orwell", Price: 700, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: Harry Potter", Description: "Série completa de J.K. Rowling", Price: 2000, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: A Culpa é das Estrelas", Description: "Romance de John Green", Price: 400, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: O Alquimista", Description: "Fábula de Paulo Coelho", Price: 450, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: Cem Anos de Solidão", Description: "Clássico de Gabriel García Márquez", Price: 600, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: O Senhor dos Anéis", Description: "Trilogia completa de J.R.R. Tolkien", Price: 1800, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
	{Name: "Livro: A Menina que Roubava Livros", Description: "Romance de Markus Zusak", Price: 500, Category: "Livros", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop"},
}
