package geo

import "github.com/weatherlab/weather-dashboard/internal/weather"

// IndianCities returns the built-in city table: metros, state capitals, hill
// stations, coastal towns and the heavy-rainfall and snowfall destinations the
// dashboard tracks.
func IndianCities() []City {
	return []City{
		{Key: "mumbai", Name: "Mumbai", State: "Maharashtra", Point: weather.GeoPoint{Lat: 19.0760, Lon: 72.8777}},
		{Key: "delhi", Name: "Delhi", State: "Delhi", Point: weather.GeoPoint{Lat: 28.7041, Lon: 77.1025}},
		{Key: "bangalore", Name: "Bangalore", State: "Karnataka", Point: weather.GeoPoint{Lat: 12.9716, Lon: 77.5946}},
		{Key: "hyderabad", Name: "Hyderabad", State: "Telangana", Point: weather.GeoPoint{Lat: 17.3850, Lon: 78.4867}},
		{Key: "chennai", Name: "Chennai", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 13.0827, Lon: 80.2707}},
		{Key: "kolkata", Name: "Kolkata", State: "West Bengal", Point: weather.GeoPoint{Lat: 22.5726, Lon: 88.3639}},
		{Key: "pune", Name: "Pune", State: "Maharashtra", Point: weather.GeoPoint{Lat: 18.5204, Lon: 73.8567}},
		{Key: "ahmedabad", Name: "Ahmedabad", State: "Gujarat", Point: weather.GeoPoint{Lat: 23.0225, Lon: 72.5714}},
		{Key: "surat", Name: "Surat", State: "Gujarat", Point: weather.GeoPoint{Lat: 21.1702, Lon: 72.8311}},
		{Key: "jaipur", Name: "Jaipur", State: "Rajasthan", Point: weather.GeoPoint{Lat: 26.9124, Lon: 75.7873}},
		{Key: "lucknow", Name: "Lucknow", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 26.8467, Lon: 80.9462}},
		{Key: "kanpur", Name: "Kanpur", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 26.4499, Lon: 80.3319}},
		{Key: "nagpur", Name: "Nagpur", State: "Maharashtra", Point: weather.GeoPoint{Lat: 21.1458, Lon: 79.0882}},
		{Key: "indore", Name: "Indore", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 22.7196, Lon: 75.8577}},
		{Key: "thane", Name: "Thane", State: "Maharashtra", Point: weather.GeoPoint{Lat: 19.2183, Lon: 72.9781}},
		{Key: "bhopal", Name: "Bhopal", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 23.2599, Lon: 77.4126}},
		{Key: "visakhapatnam", Name: "Visakhapatnam", State: "Andhra Pradesh", Point: weather.GeoPoint{Lat: 17.6869, Lon: 83.2185}},
		{Key: "patna", Name: "Patna", State: "Bihar", Point: weather.GeoPoint{Lat: 25.5941, Lon: 85.1376}},
		{Key: "vadodara", Name: "Vadodara", State: "Gujarat", Point: weather.GeoPoint{Lat: 22.3072, Lon: 73.1812}},
		{Key: "ghaziabad", Name: "Ghaziabad", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 28.6692, Lon: 77.4538}},
		{Key: "ludhiana", Name: "Ludhiana", State: "Punjab", Point: weather.GeoPoint{Lat: 30.9010, Lon: 75.8573}},
		{Key: "agra", Name: "Agra", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 27.1767, Lon: 78.0081}},
		{Key: "nashik", Name: "Nashik", State: "Maharashtra", Point: weather.GeoPoint{Lat: 19.9975, Lon: 73.7898}},
		{Key: "faridabad", Name: "Faridabad", State: "Haryana", Point: weather.GeoPoint{Lat: 28.4089, Lon: 77.3178}},
		{Key: "meerut", Name: "Meerut", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 28.9845, Lon: 77.7064}},
		{Key: "rajkot", Name: "Rajkot", State: "Gujarat", Point: weather.GeoPoint{Lat: 22.3039, Lon: 70.8022}},
		{Key: "varanasi", Name: "Varanasi", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 25.3176, Lon: 82.9739}},
		{Key: "amritsar", Name: "Amritsar", State: "Punjab", Point: weather.GeoPoint{Lat: 31.6340, Lon: 74.8723}},
		{Key: "allahabad", Name: "Allahabad", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 25.4358, Lon: 81.8463}},
		{Key: "ranchi", Name: "Ranchi", State: "Jharkhand", Point: weather.GeoPoint{Lat: 23.3441, Lon: 85.3096}},
		{Key: "howrah", Name: "Howrah", State: "West Bengal", Point: weather.GeoPoint{Lat: 22.5958, Lon: 88.2636}},
		{Key: "coimbatore", Name: "Coimbatore", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 11.0168, Lon: 76.9558}},
		{Key: "jabalpur", Name: "Jabalpur", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 23.1815, Lon: 79.9864}},
		{Key: "gwalior", Name: "Gwalior", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 26.2183, Lon: 78.1828}},
		{Key: "vijayawada", Name: "Vijayawada", State: "Andhra Pradesh", Point: weather.GeoPoint{Lat: 16.5062, Lon: 80.6480}},
		{Key: "jodhpur", Name: "Jodhpur", State: "Rajasthan", Point: weather.GeoPoint{Lat: 26.2389, Lon: 73.0243}},
		{Key: "madurai", Name: "Madurai", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 9.9252, Lon: 78.1198}},
		{Key: "raipur", Name: "Raipur", State: "Chhattisgarh", Point: weather.GeoPoint{Lat: 21.2514, Lon: 81.6296}},
		{Key: "kota", Name: "Kota", State: "Rajasthan", Point: weather.GeoPoint{Lat: 25.2138, Lon: 75.8648}},
		{Key: "chandigarh", Name: "Chandigarh", State: "Chandigarh", Point: weather.GeoPoint{Lat: 30.7333, Lon: 76.7794}},
		{Key: "guwahati", Name: "Guwahati", State: "Assam", Point: weather.GeoPoint{Lat: 26.1445, Lon: 91.7362}},
		{Key: "thiruvananthapuram", Name: "Thiruvananthapuram", State: "Kerala", Point: weather.GeoPoint{Lat: 8.5241, Lon: 76.9366}},
		{Key: "bhubaneswar", Name: "Bhubaneswar", State: "Odisha", Point: weather.GeoPoint{Lat: 20.2961, Lon: 85.8245}},
		{Key: "puducherry", Name: "Puducherry", State: "Puducherry", Point: weather.GeoPoint{Lat: 11.9416, Lon: 79.8083}},
		{Key: "panaji", Name: "Panaji", State: "Goa", Point: weather.GeoPoint{Lat: 15.4909, Lon: 73.8278}},
		{Key: "dispur", Name: "Dispur", State: "Assam", Point: weather.GeoPoint{Lat: 26.1433, Lon: 91.7898}},
		{Key: "imphal", Name: "Imphal", State: "Manipur", Point: weather.GeoPoint{Lat: 24.8170, Lon: 93.9368}},
		{Key: "shillong", Name: "Shillong", State: "Meghalaya", Point: weather.GeoPoint{Lat: 25.5788, Lon: 91.8933}},
		{Key: "aizawl", Name: "Aizawl", State: "Mizoram", Point: weather.GeoPoint{Lat: 23.7307, Lon: 92.7173}},
		{Key: "kohima", Name: "Kohima", State: "Nagaland", Point: weather.GeoPoint{Lat: 25.6751, Lon: 94.1086}},
		{Key: "itanagar", Name: "Itanagar", State: "Arunachal Pradesh", Point: weather.GeoPoint{Lat: 27.0844, Lon: 93.6053}},
		{Key: "port-blair", Name: "Port Blair", State: "Andaman and Nicobar", Point: weather.GeoPoint{Lat: 11.6234, Lon: 92.7265}},
		{Key: "silvassa", Name: "Silvassa", State: "Dadra and Nagar Haveli", Point: weather.GeoPoint{Lat: 20.2737, Lon: 73.0135}},
		{Key: "shimla", Name: "Shimla", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 31.1048, Lon: 77.1734}},
		{Key: "manali", Name: "Manali", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.2396, Lon: 77.1887}},
		{Key: "dharamshala", Name: "Dharamshala", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.2190, Lon: 76.3234}},
		{Key: "nainital", Name: "Nainital", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 29.3919, Lon: 79.4542}},
		{Key: "mussoorie", Name: "Mussoorie", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.4598, Lon: 78.0644}},
		{Key: "dehradun", Name: "Dehradun", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.3165, Lon: 78.0322}},
		{Key: "rishikesh", Name: "Rishikesh", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.0869, Lon: 78.2676}},
		{Key: "haridwar", Name: "Haridwar", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 29.9457, Lon: 78.1642}},
		{Key: "darjeeling", Name: "Darjeeling", State: "West Bengal", Point: weather.GeoPoint{Lat: 27.0410, Lon: 88.2663}},
		{Key: "gangtok", Name: "Gangtok", State: "Sikkim", Point: weather.GeoPoint{Lat: 27.3389, Lon: 88.6065}},
		{Key: "srinagar", Name: "Srinagar", State: "Jammu and Kashmir", Point: weather.GeoPoint{Lat: 34.0837, Lon: 74.7973}},
		{Key: "leh", Name: "Leh", State: "Ladakh", Point: weather.GeoPoint{Lat: 34.1526, Lon: 77.5771}},
		{Key: "ooty", Name: "Ooty", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 11.4102, Lon: 76.6950}},
		{Key: "kodaikanal", Name: "Kodaikanal", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 10.2381, Lon: 77.4892}},
		{Key: "munnar", Name: "Munnar", State: "Kerala", Point: weather.GeoPoint{Lat: 10.0889, Lon: 77.0595}},
		{Key: "wayanad", Name: "Wayanad", State: "Kerala", Point: weather.GeoPoint{Lat: 11.6054, Lon: 76.0837}},
		{Key: "mount-abu", Name: "Mount Abu", State: "Rajasthan", Point: weather.GeoPoint{Lat: 24.5926, Lon: 72.7156}},
		{Key: "mahabaleshwar", Name: "Mahabaleshwar", State: "Maharashtra", Point: weather.GeoPoint{Lat: 17.9246, Lon: 73.6577}},
		{Key: "lonavala", Name: "Lonavala", State: "Maharashtra", Point: weather.GeoPoint{Lat: 18.7537, Lon: 73.4086}},
		{Key: "coorg", Name: "Coorg", State: "Karnataka", Point: weather.GeoPoint{Lat: 12.3375, Lon: 75.8069}},
		{Key: "kochi", Name: "Kochi", State: "Kerala", Point: weather.GeoPoint{Lat: 9.9312, Lon: 76.2673}},
		{Key: "mysore", Name: "Mysore", State: "Karnataka", Point: weather.GeoPoint{Lat: 12.2958, Lon: 76.6394}},
		{Key: "mangalore", Name: "Mangalore", State: "Karnataka", Point: weather.GeoPoint{Lat: 12.9141, Lon: 74.8560}},
		{Key: "hubli", Name: "Hubli", State: "Karnataka", Point: weather.GeoPoint{Lat: 15.3647, Lon: 75.1240}},
		{Key: "belgaum", Name: "Belgaum", State: "Karnataka", Point: weather.GeoPoint{Lat: 15.8497, Lon: 74.4977}},
		{Key: "tirupati", Name: "Tirupati", State: "Andhra Pradesh", Point: weather.GeoPoint{Lat: 13.6288, Lon: 79.4192}},
		{Key: "guntur", Name: "Guntur", State: "Andhra Pradesh", Point: weather.GeoPoint{Lat: 16.3067, Lon: 80.4365}},
		{Key: "nellore", Name: "Nellore", State: "Andhra Pradesh", Point: weather.GeoPoint{Lat: 14.4426, Lon: 79.9865}},
		{Key: "tirunelveli", Name: "Tirunelveli", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 8.7139, Lon: 77.7567}},
		{Key: "salem", Name: "Salem", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 11.6643, Lon: 78.1460}},
		{Key: "tiruchirappalli", Name: "Tiruchirappalli", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 10.7905, Lon: 78.7047}},
		{Key: "vellore", Name: "Vellore", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 12.9165, Lon: 79.1325}},
		{Key: "erode", Name: "Erode", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 11.3410, Lon: 77.7172}},
		{Key: "thrissur", Name: "Thrissur", State: "Kerala", Point: weather.GeoPoint{Lat: 10.5276, Lon: 76.2144}},
		{Key: "kollam", Name: "Kollam", State: "Kerala", Point: weather.GeoPoint{Lat: 8.8932, Lon: 76.6141}},
		{Key: "kozhikode", Name: "Kozhikode", State: "Kerala", Point: weather.GeoPoint{Lat: 11.2588, Lon: 75.7804}},
		{Key: "palakkad", Name: "Palakkad", State: "Kerala", Point: weather.GeoPoint{Lat: 10.7733, Lon: 76.6547}},
		{Key: "alappuzha", Name: "Alappuzha", State: "Kerala", Point: weather.GeoPoint{Lat: 9.4981, Lon: 76.3388}},
		{Key: "noida", Name: "Noida", State: "Uttar Pradesh", Point: weather.GeoPoint{Lat: 28.5355, Lon: 77.3910}},
		{Key: "gurugram", Name: "Gurugram", State: "Haryana", Point: weather.GeoPoint{Lat: 28.4595, Lon: 77.0266}},
		{Key: "rohtak", Name: "Rohtak", State: "Haryana", Point: weather.GeoPoint{Lat: 28.8955, Lon: 76.6066}},
		{Key: "panipat", Name: "Panipat", State: "Haryana", Point: weather.GeoPoint{Lat: 29.3909, Lon: 76.9635}},
		{Key: "karnal", Name: "Karnal", State: "Haryana", Point: weather.GeoPoint{Lat: 29.6857, Lon: 76.9905}},
		{Key: "ambala", Name: "Ambala", State: "Haryana", Point: weather.GeoPoint{Lat: 30.3782, Lon: 76.7767}},
		{Key: "patiala", Name: "Patiala", State: "Punjab", Point: weather.GeoPoint{Lat: 30.3398, Lon: 76.3869}},
		{Key: "jalandhar", Name: "Jalandhar", State: "Punjab", Point: weather.GeoPoint{Lat: 31.3260, Lon: 75.5762}},
		{Key: "bathinda", Name: "Bathinda", State: "Punjab", Point: weather.GeoPoint{Lat: 30.2110, Lon: 74.9455}},
		{Key: "mohali", Name: "Mohali", State: "Punjab", Point: weather.GeoPoint{Lat: 30.7046, Lon: 76.7179}},
		{Key: "jammu", Name: "Jammu", State: "Jammu and Kashmir", Point: weather.GeoPoint{Lat: 32.7266, Lon: 74.8570}},
		{Key: "udaipur", Name: "Udaipur", State: "Rajasthan", Point: weather.GeoPoint{Lat: 24.5854, Lon: 73.7125}},
		{Key: "ajmer", Name: "Ajmer", State: "Rajasthan", Point: weather.GeoPoint{Lat: 26.4499, Lon: 74.6399}},
		{Key: "bikaner", Name: "Bikaner", State: "Rajasthan", Point: weather.GeoPoint{Lat: 28.0229, Lon: 73.3119}},
		{Key: "alwar", Name: "Alwar", State: "Rajasthan", Point: weather.GeoPoint{Lat: 27.5530, Lon: 76.6346}},
		{Key: "bharatpur", Name: "Bharatpur", State: "Rajasthan", Point: weather.GeoPoint{Lat: 27.2152, Lon: 77.4899}},
		{Key: "cuttack", Name: "Cuttack", State: "Odisha", Point: weather.GeoPoint{Lat: 20.4625, Lon: 85.8830}},
		{Key: "puri", Name: "Puri", State: "Odisha", Point: weather.GeoPoint{Lat: 19.8135, Lon: 85.8312}},
		{Key: "rourkela", Name: "Rourkela", State: "Odisha", Point: weather.GeoPoint{Lat: 22.2604, Lon: 84.8536}},
		{Key: "jamshedpur", Name: "Jamshedpur", State: "Jharkhand", Point: weather.GeoPoint{Lat: 22.8046, Lon: 86.2029}},
		{Key: "dhanbad", Name: "Dhanbad", State: "Jharkhand", Point: weather.GeoPoint{Lat: 23.7957, Lon: 86.4304}},
		{Key: "bokaro", Name: "Bokaro", State: "Jharkhand", Point: weather.GeoPoint{Lat: 23.6693, Lon: 86.1511}},
		{Key: "durgapur", Name: "Durgapur", State: "West Bengal", Point: weather.GeoPoint{Lat: 23.5204, Lon: 87.3119}},
		{Key: "asansol", Name: "Asansol", State: "West Bengal", Point: weather.GeoPoint{Lat: 23.6739, Lon: 86.9524}},
		{Key: "siliguri", Name: "Siliguri", State: "West Bengal", Point: weather.GeoPoint{Lat: 26.7271, Lon: 88.3953}},
		{Key: "gaya", Name: "Gaya", State: "Bihar", Point: weather.GeoPoint{Lat: 24.7955, Lon: 85.0002}},
		{Key: "bhagalpur", Name: "Bhagalpur", State: "Bihar", Point: weather.GeoPoint{Lat: 25.2425, Lon: 86.9842}},
		{Key: "muzaffarpur", Name: "Muzaffarpur", State: "Bihar", Point: weather.GeoPoint{Lat: 26.1225, Lon: 85.3906}},
		{Key: "bilaspur", Name: "Bilaspur", State: "Chhattisgarh", Point: weather.GeoPoint{Lat: 22.0797, Lon: 82.1409}},
		{Key: "korba", Name: "Korba", State: "Chhattisgarh", Point: weather.GeoPoint{Lat: 22.3595, Lon: 82.7501}},
		{Key: "bhilai", Name: "Bhilai", State: "Chhattisgarh", Point: weather.GeoPoint{Lat: 21.2095, Lon: 81.3785}},
		{Key: "ujjain", Name: "Ujjain", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 23.1765, Lon: 75.7885}},
		{Key: "sagar", Name: "Sagar", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 23.8388, Lon: 78.7378}},
		{Key: "dewas", Name: "Dewas", State: "Madhya Pradesh", Point: weather.GeoPoint{Lat: 22.9676, Lon: 76.0534}},
		{Key: "cherrapunji", Name: "Cherrapunji", State: "Meghalaya", Point: weather.GeoPoint{Lat: 25.2959, Lon: 91.7324}},
		{Key: "mawsynram", Name: "Mawsynram", State: "Meghalaya", Point: weather.GeoPoint{Lat: 25.2975, Lon: 91.5805}},
		{Key: "mahabalipuram", Name: "Mahabalipuram", State: "Tamil Nadu", Point: weather.GeoPoint{Lat: 12.6269, Lon: 80.1926}},
		{Key: "pondicherry", Name: "Pondicherry", State: "Puducherry", Point: weather.GeoPoint{Lat: 11.9416, Lon: 79.8083}},
		{Key: "kannur", Name: "Kannur", State: "Kerala", Point: weather.GeoPoint{Lat: 11.8745, Lon: 75.3704}},
		{Key: "kottayam", Name: "Kottayam", State: "Kerala", Point: weather.GeoPoint{Lat: 9.5916, Lon: 76.5222}},
		{Key: "idukki", Name: "Idukki", State: "Kerala", Point: weather.GeoPoint{Lat: 9.9189, Lon: 77.1025}},
		{Key: "udupi", Name: "Udupi", State: "Karnataka", Point: weather.GeoPoint{Lat: 13.3409, Lon: 74.7421}},
		{Key: "karwar", Name: "Karwar", State: "Karnataka", Point: weather.GeoPoint{Lat: 14.8137, Lon: 74.1290}},
		{Key: "ratnagiri", Name: "Ratnagiri", State: "Maharashtra", Point: weather.GeoPoint{Lat: 16.9944, Lon: 73.3000}},
		{Key: "alibag", Name: "Alibag", State: "Maharashtra", Point: weather.GeoPoint{Lat: 18.6414, Lon: 72.8722}},
		{Key: "amboli", Name: "Amboli", State: "Maharashtra", Point: weather.GeoPoint{Lat: 15.9589, Lon: 74.0047}},
		{Key: "tezpur", Name: "Tezpur", State: "Assam", Point: weather.GeoPoint{Lat: 26.6338, Lon: 92.8000}},
		{Key: "dibrugarh", Name: "Dibrugarh", State: "Assam", Point: weather.GeoPoint{Lat: 27.4728, Lon: 94.9120}},
		{Key: "silchar", Name: "Silchar", State: "Assam", Point: weather.GeoPoint{Lat: 24.8333, Lon: 92.7789}},
		{Key: "agartala", Name: "Agartala", State: "Tripura", Point: weather.GeoPoint{Lat: 23.8315, Lon: 91.2868}},
		{Key: "gulmarg", Name: "Gulmarg", State: "Jammu and Kashmir", Point: weather.GeoPoint{Lat: 34.0484, Lon: 74.3805}},
		{Key: "pahalgam", Name: "Pahalgam", State: "Jammu and Kashmir", Point: weather.GeoPoint{Lat: 34.0161, Lon: 75.3150}},
		{Key: "sonamarg", Name: "Sonamarg", State: "Jammu and Kashmir", Point: weather.GeoPoint{Lat: 34.3000, Lon: 75.2833}},
		{Key: "dalhousie", Name: "Dalhousie", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.5448, Lon: 75.9470}},
		{Key: "kullu", Name: "Kullu", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 31.9578, Lon: 77.1093}},
		{Key: "spiti", Name: "Spiti", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.2466, Lon: 78.0336}},
		{Key: "keylong", Name: "Keylong", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.5721, Lon: 77.0353}},
		{Key: "chamba", Name: "Chamba", State: "Himachal Pradesh", Point: weather.GeoPoint{Lat: 32.5562, Lon: 76.1265}},
		{Key: "auli", Name: "Auli", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.5323, Lon: 79.5833}},
		{Key: "kedarnath", Name: "Kedarnath", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.7346, Lon: 79.0669}},
		{Key: "badrinath", Name: "Badrinath", State: "Uttarakhand", Point: weather.GeoPoint{Lat: 30.7433, Lon: 79.4938}},
		{Key: "kargil", Name: "Kargil", State: "Ladakh", Point: weather.GeoPoint{Lat: 34.5539, Lon: 76.1313}},
		{Key: "tawang", Name: "Tawang", State: "Arunachal Pradesh", Point: weather.GeoPoint{Lat: 27.5860, Lon: 91.8597}},
		{Key: "sandakphu", Name: "Sandakphu", State: "West Bengal", Point: weather.GeoPoint{Lat: 27.1095, Lon: 88.0146}},
		{Key: "yumthang", Name: "Yumthang Valley", State: "Sikkim", Point: weather.GeoPoint{Lat: 27.8100, Lon: 88.7114}},
	}
}
