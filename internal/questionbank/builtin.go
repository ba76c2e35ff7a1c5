// Package questionbank carries the built-in subject content served when no
// database is configured.
package questionbank

import "edukids-quiz-service/internal/domain"

// Keys lists the subject keys in menu order.
func Keys() []string {
	return []string{"math", "portuguese", "science", "history", "geography", "art", "physical_education", "english"}
}

// Subjects returns the built-in question bank keyed by subject.
func Subjects() map[string]domain.Subject {
	return map[string]domain.Subject{
		"math": {
			Key:  "math",
			Name: "Matemática",
			Icon: "M",
			Questions: []domain.Question{
				{
					Text:         "João tem 5 balas e ganhou mais 3. Quantas balas ele tem agora?",
					Options:      []string{"6", "7", "8", "9"},
					CorrectIndex: 2,
					Hint:         "João tinha 5 balas e ganhou mais 3 → pense em juntar tudo para saber o total.",
				},
				{
					Text:         "Maria tinha 10 brinquedos e deu 4 para sua amiga. Quantos brinquedos sobraram?",
					Options:      []string{"4", "5", "6", "7"},
					CorrectIndex: 2,
					Hint:         "Maria tinha 10 brinquedos e deu 4 → pense no que sobrou depois de dar alguns.",
				},
				{
					Text:         "Se cada caixa tem 6 lápis e temos 7 caixas, quantos lápis temos no total?",
					Options:      []string{"36", "42", "48", "54"},
					CorrectIndex: 1,
					Hint:         "Se cada caixa tem 6 lápis e são 7 caixas → pense em multiplicar ou somar várias vezes.",
				},
				{
					Text:         "Ana tem 20 doces e quer dividir igualmente entre 4 amigos. Quantos doces cada um recebe?",
					Options:      []string{"3", "4", "5", "6"},
					CorrectIndex: 2,
					Hint:         "20 doces para dividir entre 4 amigos → cada um recebe a mesma parte, quantos?",
				},
				{
					Text:         "Complete a sequência: 2, 4, 6, __, 10",
					Options:      []string{"7", "8", "9", "11"},
					CorrectIndex: 1,
					Hint:         "A sequência cresce de 2 em 2: 2, 4, 6… qual vem antes do 10?",
				},
				{
					Text:         "Pedro tem 15 figurinhas e ganhou mais 25. Quantas figurinhas ele tem agora?",
					Options:      []string{"35", "40", "45", "50"},
					CorrectIndex: 1,
					Hint:         "Pedro tinha 15 figurinhas e ganhou 25 → junte as dezenas e depois as unidades.",
				},
				{
					Text:         "Se cada pacote tem 8 biscoitos e temos 9 pacotes, quantos biscoitos temos?",
					Options:      []string{"64", "72", "80", "88"},
					CorrectIndex: 1,
					Hint:         "8 biscoitos em cada pacote × 9 pacotes → é uma multiplicação, use a tabuada do 8.",
				},
				{
					Text:         "Lucas tem 100 moedas e quer dividir em 5 cofrinhos iguais. Quantas moedas em cada cofrinho?",
					Options:      []string{"15", "18", "20", "25"},
					CorrectIndex: 2,
					Hint:         "100 moedas em 5 cofrinhos → dividir em partes iguais, pense: 5 × ? = 100.",
				},
			},
		},
		"portuguese": {
			Key:  "portuguese",
			Name: "Português",
			Icon: "P",
			Questions: []domain.Question{
				{
					Text:         "Se eu tenho uma casa e ganho mais uma, quantas casas eu tenho?",
					Options:      []string{"casas", "casaes", "casases", "casa"},
					CorrectIndex: 0,
					Hint:         "Uma casa, duas… Quando temos mais de uma coisa, mudamos a palavra.",
				},
				{
					Text:         "Complete: \"O menino ___ bonito\"",
					Options:      []string{"é", "está", "ser", "estar"},
					CorrectIndex: 0,
					Hint:         "\"O menino ___ bonito\" → é algo que sempre é verdade, não só agora.",
				},
				{
					Text:         "Qual palavra significa a mesma coisa que \"feliz\"?",
					Options:      []string{"triste", "alegre", "bravo", "calmo"},
					CorrectIndex: 1,
					Hint:         "Feliz = outra palavra parecida… é o contrário de triste, qual é?",
				},
				{
					Text:         "Quantas sílabas tem a palavra \"escola\"?",
					Options:      []string{"2", "3", "4", "5"},
					CorrectIndex: 1,
					Hint:         "\"Escola\" tem pedacinhos de som → bata palmas para separar em sílabas.",
				},
				{
					Text:         "Qual palavra é o contrário de \"grande\"?",
					Options:      []string{"alto", "pequeno", "largo", "estreito"},
					CorrectIndex: 1,
					Hint:         "O contrário de \"grande\" é algo bem menorzinho.",
				},
				{
					Text:         "Complete: \"A menina ___ estudiosa\"",
					Options:      []string{"é", "está", "ser", "estar"},
					CorrectIndex: 0,
					Hint:         "\"A menina ___ estudiosa\" → é uma característica dela, não só de hoje.",
				},
				{
					Text:         "Quantas sílabas tem a palavra \"universidade\"?",
					Options:      []string{"4", "5", "6", "7"},
					CorrectIndex: 2,
					Hint:         "\"Universidade\" tem várias sílabas → fale devagar u-ni-ver-si-da-de.",
				},
				{
					Text:         "Se eu tenho um papel e ganho mais um, quantos papéis eu tenho?",
					Options:      []string{"papéis", "papeis", "papel", "papéis"},
					CorrectIndex: 0,
					Hint:         "Um papel, dois… Quando passa de um, muda a palavra no final.",
				},
			},
		},
		"science": {
			Key:  "science",
			Name: "Ciências",
			Icon: "C",
			Questions: []domain.Question{
				{
					Text:         "Qual é o maior órgão do nosso corpo?",
					Options:      []string{"Coração", "Cérebro", "Pele", "Fígado"},
					CorrectIndex: 2,
					Hint:         "Qual parte do corpo cobre tudo e nos protege do frio, calor e machucados?",
				},
				{
					Text:         "Quantos ossos temos no nosso corpo?",
					Options:      []string{"156", "206", "256", "306"},
					CorrectIndex: 1,
					Hint:         "Nosso corpo adulto tem pouco mais de 200 ossos, pense em algo próximo a isso.",
				},
				{
					Text:         "Qual animal é conhecido como \"rei da selva\"?",
					Options:      []string{"Tigre", "Leão", "Elefante", "Gorila"},
					CorrectIndex: 1,
					Hint:         "Qual animal com juba é chamado de \"rei da selva\"?",
				},
				{
					Text:         "Qual é a cor das folhas das plantas?",
					Options:      []string{"Vermelha", "Azul", "Verde", "Amarela"},
					CorrectIndex: 2,
					Hint:         "As folhas das plantas geralmente têm a mesma cor… qual é a mais comum?",
				},
				{
					Text:         "Quantos planetas existem no sistema solar?",
					Options:      []string{"7", "8", "9", "10"},
					CorrectIndex: 1,
					Hint:         "O sistema solar tem 8 planetas que giram ao redor do Sol, você lembra?",
				},
				{
					Text:         "Qual é o gás que respiramos para viver?",
					Options:      []string{"Nitrogênio", "Oxigênio", "Dióxido de carbono", "Hidrogênio"},
					CorrectIndex: 1,
					Hint:         "O ar tem vários gases, mas só um é essencial para respirarmos e viver.",
				},
				{
					Text:         "Qual é o animal mais rápido do mundo?",
					Options:      []string{"Guepardo", "Leão", "Tigre", "Leopardo"},
					CorrectIndex: 0,
					Hint:         "O animal mais rápido do mundo corre muito mais rápido que um carro na rua.",
				},
				{
					Text:         "Para que servem as raízes das plantas?",
					Options:      []string{"Fazer fotossíntese", "Absorver água e nutrientes", "Produzir flores", "Fazer frutos"},
					CorrectIndex: 1,
					Hint:         "As raízes puxam algo do solo para a planta crescer forte, qual é a função?",
				},
			},
		},
		"history": {
			Key:  "history",
			Name: "História",
			Icon: "H",
			Questions: []domain.Question{
				{
					Text:         "Quem descobriu o Brasil em 1500?",
					Options:      []string{"Pedro Álvares Cabral", "Dom Pedro II", "Tiradentes", "Santos Dumont"},
					CorrectIndex: 0,
					Hint:         "Quem chegou ao Brasil em 1500 foi um navegador português famoso.",
				},
				{
					Text:         "Em que ano o Brasil se tornou independente?",
					Options:      []string{"1808", "1822", "1889", "1922"},
					CorrectIndex: 1,
					Hint:         "O grito de independência foi em 1822, lembra da data especial?",
				},
				{
					Text:         "Qual foi a primeira capital do Brasil?",
					Options:      []string{"Salvador", "Rio de Janeiro", "Brasília", "São Paulo"},
					CorrectIndex: 0,
					Hint:         "A primeira capital não foi Brasília → começou lá no Nordeste do Brasil.",
				},
				{
					Text:         "Quem foi Dom Pedro I?",
					Options:      []string{"Um navegador", "Um herói da independência", "Um imperador", "Um artista"},
					CorrectIndex: 2,
					Hint:         "Dom Pedro I → ele foi imperador, filho do rei de Portugal, muito importante no Brasil.",
				},
				{
					Text:         "Em que século vivemos?",
					Options:      []string{"Século XIX", "Século XX", "Século XXI", "Século XXII"},
					CorrectIndex: 2,
					Hint:         "Estamos no século 21 → pense que os anos atuais começam com \"20…\".",
				},
				{
					Text:         "O que comemoramos no dia 7 de setembro?",
					Options:      []string{"República", "Independência", "Descobrimento", "Abolição"},
					CorrectIndex: 1,
					Hint:         "No dia 7 de setembro comemoramos algo que nos deixou livres da coroa portuguesa.",
				},
				{
					Text:         "Quem foi Tiradentes?",
					Options:      []string{"Um rei", "Um herói da Inconfidência", "Um navegador", "Um artista"},
					CorrectIndex: 1,
					Hint:         "Tiradentes foi um herói que lutou por liberdade no Brasil.",
				},
				{
					Text:         "Em que data foi proclamada a República do Brasil?",
					Options:      []string{"15 de novembro de 1889", "7 de setembro de 1822", "13 de maio de 1888", "22 de abril de 1500"},
					CorrectIndex: 0,
					Hint:         "A República foi proclamada em 1889 → lembra a data especial de novembro?",
				},
			},
		},
		"geography": {
			Key:  "geography",
			Name: "Geografia",
			Icon: "G",
			Questions: []domain.Question{
				{
					Text:         "Qual é a capital do Brasil?",
					Options:      []string{"Rio de Janeiro", "São Paulo", "Brasília", "Salvador"},
					CorrectIndex: 2,
					Hint:         "A capital atual fica no Centro-Oeste, construída só para ser a capital.",
				},
				{
					Text:         "Quantos estados tem o Brasil?",
					Options:      []string{"25", "26", "27", "28"},
					CorrectIndex: 1,
					Hint:         "O Brasil tem 26 estados + 1 Distrito Federal → totalize isso.",
				},
				{
					Text:         "Qual é o maior estado do Brasil?",
					Options:      []string{"São Paulo", "Minas Gerais", "Amazonas", "Pará"},
					CorrectIndex: 2,
					Hint:         "O maior estado fica na região Norte e tem a Floresta Amazônica.",
				},
				{
					Text:         "Qual é o rio mais famoso do Brasil?",
					Options:      []string{"Rio São Francisco", "Rio Amazonas", "Rio Paraná", "Rio Tietê"},
					CorrectIndex: 1,
					Hint:         "O rio mais famoso do Brasil também é o maior em volume de água do mundo.",
				},
				{
					Text:         "Qual é a montanha mais alta do Brasil?",
					Options:      []string{"Pico da Neblina", "Pico da Bandeira", "Pedra da Mina", "Morro da Igreja"},
					CorrectIndex: 0,
					Hint:         "A montanha mais alta do Brasil fica no Amazonas, bem no topo.",
				},
				{
					Text:         "Qual é a região mais populosa do Brasil?",
					Options:      []string{"Norte", "Nordeste", "Sudeste", "Sul"},
					CorrectIndex: 2,
					Hint:         "A região mais populosa tem São Paulo, Rio e Minas Gerais → qual é?",
				},
				{
					Text:         "Qual é a capital de São Paulo?",
					Options:      []string{"São Paulo", "Campinas", "Santos", "Ribeirão Preto"},
					CorrectIndex: 0,
					Hint:         "A capital do estado de São Paulo tem o mesmo nome do estado.",
				},
				{
					Text:         "Qual é o ponto turístico mais famoso do Rio de Janeiro?",
					Options:      []string{"Pão de Açúcar", "Cristo Redentor", "Praia de Copacabana", "Maracanã"},
					CorrectIndex: 1,
					Hint:         "O ponto turístico mais famoso do Rio é uma estátua gigante de braços abertos.",
				},
			},
		},
		"art": {
			Key:  "art",
			Name: "Artes",
			Icon: "A",
			Questions: []domain.Question{
				{
					Text:         "Qual cor é formada pela mistura de azul e amarelo?",
					Options:      []string{"Roxo", "Verde", "Laranja", "Rosa"},
					CorrectIndex: 1,
					Hint:         "Azul + Amarelo → pense na mistura das tintas, que cor aparece?",
				},
				{
					Text:         "Qual é o nome do artista que pintou a Mona Lisa?",
					Options:      []string{"Van Gogh", "Picasso", "Leonardo da Vinci", "Monet"},
					CorrectIndex: 2,
					Hint:         "A Mona Lisa foi pintada por um artista italiano do Renascimento.",
				},
				{
					Text:         "Quantas cordas tem um violão?",
					Options:      []string{"4", "5", "6", "7"},
					CorrectIndex: 2,
					Hint:         "O violão tradicional tem várias cordas → conte no desenho.",
				},
				{
					Text:         "Qual é o nome da técnica de pintura com pequenos pontos?",
					Options:      []string{"Aquarela", "Pontilhismo", "Óleo", "Giz"},
					CorrectIndex: 1,
					Hint:         "Pontilhismo = feito com vários pontinhos pequenos, como se fosse um mosaico.",
				},
				{
					Text:         "Qual forma geométrica tem 3 lados?",
					Options:      []string{"Quadrado", "Retângulo", "Triângulo", "Círculo"},
					CorrectIndex: 2,
					Hint:         "\"Tri\" significa 3 → que figura tem 3 lados?",
				},
				{
					Text:         "Qual é a cor do céu em um dia ensolarado?",
					Options:      []string{"Verde", "Azul", "Roxo", "Amarelo"},
					CorrectIndex: 1,
					Hint:         "Em dias de sol, olhe para o céu… qual cor você vê?",
				},
				{
					Text:         "Qual instrumento musical tem teclas pretas e brancas?",
					Options:      []string{"Violão", "Flauta", "Piano", "Bateria"},
					CorrectIndex: 2,
					Hint:         "Qual instrumento tem teclas brancas e pretas, muito usado em música clássica?",
				},
				{
					Text:         "Qual é o nome do movimento artístico de Van Gogh?",
					Options:      []string{"Cubismo", "Impressionismo", "Expressionismo", "Realismo"},
					CorrectIndex: 2,
					Hint:         "Van Gogh usava cores fortes e pinceladas expressivas → qual movimento é esse?",
				},
			},
		},
		"physical_education": {
			Key:  "physical_education",
			Name: "Educação Física",
			Icon: "E",
			Questions: []domain.Question{
				{
					Text:         "Quantos jogadores tem um time de futebol?",
					Options:      []string{"10", "11", "12", "13"},
					CorrectIndex: 1,
					Hint:         "Um time de futebol completo tem 10 jogadores + 1 goleiro.",
				},
				{
					Text:         "Qual é o nome do esporte que usa raquete e uma bola pequena?",
					Options:      []string{"Tênis", "Vôlei", "Basquete", "Handebol"},
					CorrectIndex: 0,
					Hint:         "Esporte de raquete + bolinha pequena → jogado em quadra ou grama.",
				},
				{
					Text:         "Quantos quartos tem um jogo de basquete?",
					Options:      []string{"2", "3", "4", "5"},
					CorrectIndex: 2,
					Hint:         "O basquete é dividido em 4 períodos → como \"quartos\".",
				},
				{
					Text:         "Qual é o nome do movimento de alongamento que fazemos antes de exercícios?",
					Options:      []string{"Aquecimento", "Resfriamento", "Relaxamento", "Meditação"},
					CorrectIndex: 0,
					Hint:         "Antes do exercício, sempre fazemos um movimento para aquecer os músculos.",
				},
				{
					Text:         "Qual é a cor da faixa de judô para iniciantes?",
					Options:      []string{"Branca", "Amarela", "Verde", "Azul"},
					CorrectIndex: 0,
					Hint:         "A faixa inicial do judô é branca, todos começam iguais.",
				},
				{
					Text:         "Quantos metros tem uma pista de atletismo?",
					Options:      []string{"300m", "400m", "500m", "600m"},
					CorrectIndex: 1,
					Hint:         "A pista oficial de atletismo tem 400 metros → uma volta completa na pista.",
				},
				{
					Text:         "Qual é o nome do esporte que usa rede e bola?",
					Options:      []string{"Futebol", "Vôlei", "Basquete", "Tênis"},
					CorrectIndex: 1,
					Hint:         "Esporte de rede, a bola não pode cair no chão → qual é?",
				},
				{
					Text:         "Qual é a velocidade máxima permitida em uma corrida de 100m?",
					Options:      []string{"Não há limite", "10 segundos", "15 segundos", "20 segundos"},
					CorrectIndex: 0,
					Hint:         "Na corrida de 100m não há limite → cada um corre o mais rápido possível.",
				},
			},
		},
		"english": {
			Key:  "english",
			Name: "Inglês",
			Icon: "I",
			Questions: []domain.Question{
				{
					Text:         "Como se diz \"casa\" em inglês?",
					Options:      []string{"House", "Home", "Car", "Book"},
					CorrectIndex: 0,
					Hint:         "É o lugar onde dormimos e guardamos nossas coisas. Em inglês, começa com H.",
				},
				{
					Text:         "Qual é a tradução de \"hello\" para português?",
					Options:      []string{"Tchau", "Olá", "Obrigado", "Desculpe"},
					CorrectIndex: 1,
					Hint:         "Quando atendemos o telefone, usamos essa palavra em inglês. Começa com H.",
				},
				{
					Text:         "Como se diz \"gato\" em inglês?",
					Options:      []string{"Dog", "Cat", "Bird", "Fish"},
					CorrectIndex: 1,
					Hint:         "Esse animal gosta de caçar ratos. Em inglês, começa com C.",
				},
				{
					Text:         "Qual é a cor \"red\" em português?",
					Options:      []string{"Azul", "Verde", "Vermelho", "Amarelo"},
					CorrectIndex: 2,
					Hint:         "É a cor que aparece no sinal de trânsito para indicar \"pare\". Em inglês, começa com R.",
				},
				{
					Text:         "Como se diz \"obrigado\" em inglês?",
					Options:      []string{"Please", "Thank you", "Sorry", "Excuse me"},
					CorrectIndex: 1,
					Hint:         "Quando alguém faz algo por você e você quer ser educado, usa-se essa expressão. A primeira palavra começa com T.",
				},
				{
					Text:         "Qual é o número \"five\" em português?",
					Options:      []string{"Três", "Quatro", "Cinco", "Seis"},
					CorrectIndex: 2,
					Hint:         "É o número que vem depois do quatro e antes do seis. Em inglês, começa com F.",
				},
				{
					Text:         "Como se diz \"água\" em inglês?",
					Options:      []string{"Fire", "Water", "Earth", "Air"},
					CorrectIndex: 1,
					Hint:         "É o líquido que bebemos todos os dias. Em inglês, começa com W.",
				},
				{
					Text:         "Qual é a tradução de \"good morning\"?",
					Options:      []string{"Boa tarde", "Boa noite", "Bom dia", "Boa sorte"},
					CorrectIndex: 2,
					Hint:         "É a expressão usada quando encontramos alguém cedo, antes do almoço. A primeira palavra começa com G.",
				},
			},
		},
	}
}
