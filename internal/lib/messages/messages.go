// Package messages содержит локализованные статусные сообщения сайта.
// Сайт грузинский, поэтому все видимые посетителю строки — на
// грузинском, в тоне исходных сообщений сайта. Ошибки никогда не
// показываются иначе как текстом в статусном элементе.
package messages

// Статусные сообщения форм.
const (
	Registered         = "✅ ანგარიში წარმატებით შეიქმნა!"
	LoggedIn           = "👋 კეთილი იყოს თქვენი დაბრუნება!"
	LoggedOut          = "თქვენ გამოხვედით ანგარიშიდან."
	ProfileSaved       = "✅ პროფილი შენახულია!"
	AvatarSaved        = "✅ ფოტო განახლდა!"
	ReservationCreated = "🍽️ მადლობა! თქვენი ჯავშანი მიღებულია."
)

// Сообщения об ошибках.
const (
	NoAccount          = "ანგარიში ვერ მოიძებნა. გთხოვთ ჯერ დარეგისტრირდეთ."
	InvalidCredentials = "ელ-ფოსტა ან პაროლი არასწორია."
	InvalidFileType    = "გთხოვთ აირჩიოთ სურათის ფაილი."
)

// ReservationsEmpty — плейсхолдер пустого списка бронирований.
const ReservationsEmpty = "ჯავშნები ჯერ არ არის."
