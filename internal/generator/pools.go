package generator

import "streaming-service.backend/internal/domain/entities"

var maleFirstNames = []string{
	"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей", "Артём", "Илья",
	"Кирилл", "Михаил", "Никита", "Матвей", "Роман", "Егор", "Арсений", "Иван",
	"Денис", "Евгений", "Даниил", "Тимофей", "Владислав", "Игорь", "Владимир", "Павел",
	"Руслан", "Марк", "Константин", "Тимур", "Олег", "Ярослав", "Антон", "Николай",
	"Глеб", "Данил", "Савелий", "Вадим", "Степан", "Юрий", "Богдан", "Григорий",
}

var femaleFirstNames = []string{
	"Анастасия", "Мария", "Анна", "Виктория", "Екатерина", "Наталья", "Марина", "Полина",
	"София", "Дарья", "Алиса", "Ксения", "Александра", "Елена", "Ольга", "Татьяна",
	"Ирина", "Юлия", "Светлана", "Валерия", "Вероника", "Арина", "Елизавета", "Кристина",
	"Алина", "Варвара", "Милана", "Ульяна", "Диана", "Яна", "Людмила", "Галина",
	"Василиса", "Маргарита", "Евгения", "Надежда", "Любовь", "Оксана", "Зоя", "Нина",
}

var malePatronymics = []string{
	"Александрович", "Дмитриевич", "Сергеевич", "Андреевич", "Алексеевич", "Михайлович",
	"Иванович", "Владимирович", "Николаевич", "Павлович", "Евгеньевич", "Игоревич",
	"Олегович", "Викторович", "Юрьевич", "Константинович", "Романович", "Петрович",
	"Борисович", "Григорьевич", "Анатольевич", "Васильевич", "Фёдорович", "Степанович",
}

var femalePatronymics = []string{
	"Александровна", "Дмитриевна", "Сергеевна", "Андреевна", "Алексеевна", "Михайловна",
	"Ивановна", "Владимировна", "Николаевна", "Павловна", "Евгеньевна", "Игоревна",
	"Олеговна", "Викторовна", "Юрьевна", "Константиновна", "Романовна", "Петровна",
	"Борисовна", "Григорьевна", "Анатольевна", "Васильевна", "Фёдоровна", "Степановна",
}

// masculine forms; feminine forms are derived by feminineSurname
var surnames = []string{
	"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов", "Михайлов",
	"Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев", "Семёнов", "Егоров",
	"Павлов", "Козлов", "Степанов", "Николаев", "Орлов", "Андреев", "Макаров", "Никитин",
	"Захаров", "Зайцев", "Соловьёв", "Борисов", "Яковлев", "Григорьев", "Романов", "Воробьёв",
	"Сергеев", "Кузьмин", "Фролов", "Александров", "Дмитриев", "Королёв", "Гусев", "Киселёв",
	"Ильин", "Максимов", "Поляков", "Сорокин", "Виноградов", "Ковалёв", "Белов", "Медведев",
	"Антонов", "Тарасов", "Жуков", "Баранов", "Филиппов", "Комаров", "Давыдов", "Беляев",
	"Герасимов", "Богданов", "Осипов", "Сидоров", "Матвеев", "Титов", "Марков", "Миронов",
	"Крылов", "Куликов", "Карпов", "Власов", "Мельников", "Денисов", "Гаврилов", "Тихонов",
	"Казаков", "Афанасьев", "Данилов", "Савельев", "Тимофеев", "Фомин", "Чернов", "Абрамов",
	"Мартынов", "Ефимов", "Федотов", "Щербаков", "Назаров", "Калинин", "Исаев", "Чернышёв",
	"Быков", "Маслов", "Родионов", "Коновалов", "Лазарев", "Воронин", "Климов", "Филатов",
	"Пономарёв", "Голубев", "Кудрявцев", "Прохоров", "Наумов", "Потапов", "Журавлёв", "Овчинников",
	"Трофимов", "Леонов", "Соболев", "Ермаков", "Колесников", "Гончаров", "Емельянов", "Никифоров",
	"Грачёв", "Котов", "Гришин", "Ефремов", "Архипов", "Громов", "Кириллов", "Малышев",
	"Панов", "Моисеев", "Румянцев", "Акимов", "Кондратьев", "Бирюков", "Горбунов", "Анисимов",
	"Еремин", "Тихомиров", "Галкин", "Лукьянов", "Михеев", "Скворцов", "Юдин", "Белоусов",
	"Нестеров", "Симонов", "Прокофьев", "Харитонов", "Князев", "Цветков", "Левин", "Митрофанов",
	"Воронов", "Аксёнов", "Софронов", "Мальцев", "Логинов", "Горшков", "Савин", "Краснов",
	"Майоров", "Демидов", "Елисеев", "Рыбаков", "Сафонов", "Плотников", "Дёмин", "Хохлов",
	"Жданов", "Рябов", "Островский", "Вишневский", "Ковальский", "Покровский", "Жуковский", "Давыдовский",
}

var emailDomains = []string{"gmail.com", "mail.ru", "yandex.ru", "yahoo.com", "icloud.com"}

var deviceNames = map[entities.DeviceType][]string{
	entities.DevicePhone: {
		"iPhone 14", "iPhone 13", "iPhone 12", "Samsung Galaxy S23", "Samsung Galaxy S22",
		"Google Pixel 7", "OnePlus 11", "Xiaomi 13", "Huawei P50", "iPhone 15",
	},
	entities.DeviceTablet: {
		"iPad Pro", "iPad Air", "iPad", "Samsung Galaxy Tab S8", "Samsung Galaxy Tab S7",
		"Google Pixel Tablet", "Amazon Fire HD", "Lenovo Tab P11", "Surface Pro 9",
	},
	entities.DeviceSmartTV: {
		"Samsung Smart TV", "LG Smart TV", "Sony Bravia", "TCL Smart TV", "Hisense Smart TV",
		"Vizio Smart TV", "Roku TV", "Android TV", "Apple TV 4K", "Fire TV",
	},
	entities.DevicePC: {
		"MacBook Pro", "MacBook Air", "Dell XPS", "HP Spectre", "Lenovo ThinkPad",
		"ASUS ZenBook", "Surface Laptop", "Acer Swift", "MSI Creator", "Razer Blade",
		"Custom PC", "iMac", "Dell OptiPlex", "HP Pavilion", "Lenovo ThinkCentre",
		"ASUS ROG", "Alienware Aurora", "Mac Studio", "Surface Studio",
	},
	entities.DeviceConsole: {
		"PlayStation 5", "Xbox Series X", "Nintendo Switch", "PlayStation 4",
		"Xbox One", "Steam Deck", "Nintendo Switch OLED", "PlayStation 4 Pro",
		"Roku Ultra", "Amazon Fire Stick", "Google Chromecast", "Apple TV",
		"NVIDIA Shield", "Roku Express", "Fire TV Cube", "Chromecast Ultra",
	},
}
